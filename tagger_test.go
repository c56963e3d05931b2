package bumptag_test

import (
	"context"
	"errors"
	"math"
	"strconv"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/woozymasta/bumptag"
	"github.com/woozymasta/bumptag/internal/mock"
)

type fixture struct {
	repo   *mock.MockRepository
	runner *mock.MockRunner
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	c := gomock.NewController(t)

	return fixture{
		repo:   mock.NewMockRepository(c),
		runner: mock.NewMockRunner(c),
	}
}

func (f fixture) tagger(cfg bumptag.Config) *bumptag.Tagger {
	return bumptag.New(f.repo, f.runner, cfg, nil)
}

func syncConfig() bumptag.Config {
	return bumptag.Config{
		Remote: "origin",
		Sync:   true,
		Select: bumptag.DefaultSelectOptions(),
	}
}

func mustRequest(t *testing.T, major, minor, patch bool, explicit string) bumptag.Request {
	t.Helper()
	req, err := bumptag.NewRequest(major, minor, patch, explicit)
	require.NoError(t, err)

	return req
}

// expectSync records delete-then-refetch of the tag namespace.
func (f fixture) expectSync(stale []string, remote string) {
	gomock.InOrder(
		f.repo.EXPECT().Tags(gomock.Any()).Return(stale, nil),
		f.repo.EXPECT().DeleteTags(gomock.Any(), stale).Return(nil),
		f.repo.EXPECT().FetchTags(gomock.Any(), remote).Return(nil),
	)
}

func TestRun_PatchBump(t *testing.T) {
	f := newFixture(t)
	remoteTags := []string{"v2.3.0", "v2.4.1", "v2.4.0", "nightly"}

	gomock.InOrder(
		f.repo.EXPECT().Tags(gomock.Any()).Return([]string{"v2.4.2"}, nil), // stale tag from an aborted run
		f.repo.EXPECT().DeleteTags(gomock.Any(), []string{"v2.4.2"}).Return(nil),
		f.repo.EXPECT().FetchTags(gomock.Any(), "origin").Return(nil),
		f.repo.EXPECT().Tags(gomock.Any()).Return(remoteTags, nil),
		f.repo.EXPECT().Tags(gomock.Any()).Return(remoteTags, nil),
		f.repo.EXPECT().CreateTag(gomock.Any(), "v2.4.2", "").Return(nil),
	)

	res, err := f.tagger(syncConfig()).Run(context.Background(), mustRequest(t, false, false, true, ""))
	require.NoError(t, err)
	assert.Equal(t, "v2.4.1", res.Previous.Tag())
	assert.Equal(t, "v2.4.2", res.Next.Tag())
	assert.True(t, res.Created)
}

func TestRun_MajorBump(t *testing.T) {
	f := newFixture(t)
	remoteTags := []string{"v2.4.1"}

	f.repo.EXPECT().Tags(gomock.Any()).Return(nil, nil)
	f.repo.EXPECT().DeleteTags(gomock.Any(), nil).Return(nil)
	f.repo.EXPECT().FetchTags(gomock.Any(), "origin").Return(nil)
	f.repo.EXPECT().Tags(gomock.Any()).Return(remoteTags, nil).Times(2)
	f.repo.EXPECT().CreateTag(gomock.Any(), "v3.0.0", "Release v3.0.0").Return(nil)

	cfg := syncConfig()
	cfg.Message = "Release {tag}"

	res, err := f.tagger(cfg).Run(context.Background(), mustRequest(t, true, false, false, ""))
	require.NoError(t, err)
	assert.Equal(t, "v3.0.0", res.Next.Tag())
}

func TestRun_ExplicitWithoutRemoteTags(t *testing.T) {
	f := newFixture(t)

	f.expectSync([]string{}, "origin")
	f.repo.EXPECT().Tags(gomock.Any()).Return([]string{}, nil).Times(2)
	f.repo.EXPECT().CreateTag(gomock.Any(), "v5.0.0-beta", "").Return(nil)

	res, err := f.tagger(syncConfig()).Run(context.Background(), mustRequest(t, false, false, true, "v5.0.0-beta"))
	require.NoError(t, err)
	assert.True(t, res.Previous.IsZero())
	assert.Equal(t, "v5.0.0-beta", res.Next.Tag())
}

func TestRun_IncrementWithoutRemoteTags(t *testing.T) {
	f := newFixture(t)

	f.expectSync([]string{}, "origin")
	f.repo.EXPECT().Tags(gomock.Any()).Return([]string{"nightly"}, nil)

	_, err := f.tagger(syncConfig()).Run(context.Background(), mustRequest(t, false, true, false, ""))
	assert.ErrorIs(t, err, bumptag.ErrNoTagsFound)
}

func TestRun_RemoteUnreachable(t *testing.T) {
	f := newFixture(t)

	gomock.InOrder(
		f.repo.EXPECT().Tags(gomock.Any()).Return([]string{"v1.0.0"}, nil),
		f.repo.EXPECT().DeleteTags(gomock.Any(), []string{"v1.0.0"}).Return(nil),
		f.repo.EXPECT().FetchTags(gomock.Any(), "origin").Return(errors.New("could not resolve host")),
	)

	_, err := f.tagger(syncConfig()).Run(context.Background(), mustRequest(t, false, false, true, ""))
	require.ErrorIs(t, err, bumptag.ErrRemoteUnreachable)
	assert.Contains(t, err.Error(), "could not resolve host")
}

func TestRun_TagAlreadyExists(t *testing.T) {
	f := newFixture(t)

	f.expectSync([]string{}, "origin")
	f.repo.EXPECT().Tags(gomock.Any()).Return([]string{"v1.0.0", "v1.1.0"}, nil).Times(2)

	_, err := f.tagger(syncConfig()).Run(context.Background(), mustRequest(t, false, false, false, "v1.1.0"))
	assert.ErrorIs(t, err, bumptag.ErrTagAlreadyExists)
}

func TestRun_DryRun(t *testing.T) {
	f := newFixture(t)

	f.expectSync([]string{}, "origin")
	f.repo.EXPECT().Tags(gomock.Any()).Return([]string{"v0.9.3"}, nil)
	f.repo.EXPECT().CreateTag(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	cfg := syncConfig()
	cfg.DryRun = true

	res, err := f.tagger(cfg).Run(context.Background(), mustRequest(t, false, true, false, ""))
	require.NoError(t, err)
	assert.Equal(t, "v0.10.0", res.Next.Tag())
	assert.False(t, res.Created)
}

func TestRun_QueryModeLeavesLocalTags(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().DeleteTags(gomock.Any(), gomock.Any()).Times(0)
	f.repo.EXPECT().FetchTags(gomock.Any(), gomock.Any()).Times(0)
	f.repo.EXPECT().RemoteTags(gomock.Any(), "origin").Return([]string{"v1.4.0", "v1.3.9"}, nil)
	f.repo.EXPECT().Tags(gomock.Any()).Return([]string{"v1.3.9"}, nil)
	f.repo.EXPECT().CreateTag(gomock.Any(), "v1.4.1", "").Return(nil)

	cfg := syncConfig()
	cfg.Sync = false

	res, err := f.tagger(cfg).Run(context.Background(), mustRequest(t, false, false, true, ""))
	require.NoError(t, err)
	assert.Equal(t, "v1.4.1", res.Next.Tag())
}

func TestRun_QueryModeRemoteUnreachable(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().RemoteTags(gomock.Any(), "https://example.com/repo.git").Return(nil, errors.New("timeout"))

	cfg := syncConfig()
	cfg.Sync = false
	cfg.RemoteURL = "https://example.com/repo.git"

	_, err := f.tagger(cfg).Run(context.Background(), mustRequest(t, false, false, true, ""))
	assert.ErrorIs(t, err, bumptag.ErrRemoteUnreachable)
}

func TestSync_TemporaryRemoteRemovedOnFailure(t *testing.T) {
	f := newFixture(t)

	gomock.InOrder(
		f.repo.EXPECT().RemoveRemote(gomock.Any(), "bumptag-upstream").Return(errors.New("no such remote")),
		f.repo.EXPECT().AddRemote(gomock.Any(), "bumptag-upstream", "https://example.com/repo.git").Return(nil),
		f.repo.EXPECT().Tags(gomock.Any()).Return([]string{}, nil),
		f.repo.EXPECT().DeleteTags(gomock.Any(), []string{}).Return(nil),
		f.repo.EXPECT().FetchTags(gomock.Any(), "bumptag-upstream").Return(errors.New("denied")),
		f.repo.EXPECT().RemoveRemote(gomock.Any(), "bumptag-upstream").Return(nil),
	)

	cfg := syncConfig()
	cfg.RemoteURL = "https://example.com/repo.git"

	err := f.tagger(cfg).Sync(context.Background())
	assert.ErrorIs(t, err, bumptag.ErrRemoteUnreachable)
}

func TestSync_StaleTemporaryRemote(t *testing.T) {
	f := newFixture(t)

	gomock.InOrder(
		f.repo.EXPECT().RemoveRemote(gomock.Any(), "bumptag-upstream").Return(nil), // left by a killed run
		f.repo.EXPECT().AddRemote(gomock.Any(), "bumptag-upstream", "https://example.com/repo.git").Return(nil),
		f.repo.EXPECT().Tags(gomock.Any()).Return([]string{"v1.0.0"}, nil),
		f.repo.EXPECT().DeleteTags(gomock.Any(), []string{"v1.0.0"}).Return(nil),
		f.repo.EXPECT().FetchTags(gomock.Any(), "bumptag-upstream").Return(nil),
		f.repo.EXPECT().RemoveRemote(gomock.Any(), "bumptag-upstream").Return(nil),
	)

	cfg := syncConfig()
	cfg.RemoteURL = "https://example.com/repo.git"

	require.NoError(t, f.tagger(cfg).Sync(context.Background()))
}

func TestRun_OnlySuffixedRemoteTag(t *testing.T) {
	f := newFixture(t)

	f.expectSync([]string{}, "origin")
	f.repo.EXPECT().Tags(gomock.Any()).Return([]string{"v1.0.0-beta", "nightly"}, nil).Times(2)
	f.repo.EXPECT().CreateTag(gomock.Any(), "v1.0.1", "").Return(nil)

	res, err := f.tagger(syncConfig()).Run(context.Background(), mustRequest(t, false, false, true, ""))
	require.NoError(t, err)
	assert.Equal(t, "v1.0.0-beta", res.Previous.Tag())
	assert.Equal(t, "v1.0.1", res.Next.Tag())
}

func TestResolveLatest_SuffixedHighest(t *testing.T) {
	cases := []struct {
		name        string
		releaseOnly bool
		want        string
	}{
		{"default", false, "v2.5.0-dirty"},
		{"release only", true, "v2.4.1"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			f := newFixture(t)
			f.repo.EXPECT().Tags(gomock.Any()).Return([]string{"v2.4.1", "v2.5.0-dirty"}, nil)

			cfg := syncConfig()
			cfg.Select.ReleaseOnly = c.releaseOnly

			v, err := f.tagger(cfg).ResolveLatest(context.Background())
			require.NoError(t, err)
			assert.Equal(t, c.want, v.Tag())
		})
	}
}

func TestRun_BumpOverflow(t *testing.T) {
	f := newFixture(t)

	f.expectSync([]string{}, "origin")
	f.repo.EXPECT().Tags(gomock.Any()).Return([]string{"v" + strconv.Itoa(math.MaxInt) + ".0.0"}, nil)
	f.repo.EXPECT().CreateTag(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	_, err := f.tagger(syncConfig()).Run(context.Background(), mustRequest(t, true, false, false, ""))
	assert.ErrorIs(t, err, bumptag.ErrInvalidArgument)
}

func TestResolveLatest_Command(t *testing.T) {
	f := newFixture(t)

	f.runner.EXPECT().Run(gomock.Any(), "make", "-s", "latest-tag").Return("make: entering directory\nv2.4.1", nil)

	cfg := syncConfig()
	cfg.LatestCommand = []string{"make", "-s", "latest-tag"}

	v, err := f.tagger(cfg).ResolveLatest(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "v2.4.1", v.Tag())
}

func TestResolveLatest_CommandErrors(t *testing.T) {
	cases := []struct {
		name string
		out  string
		err  error
		want error
	}{
		{"failed", "", errors.New("exit status 2"), bumptag.ErrCommand},
		{"empty", "", nil, bumptag.ErrNoTagsFound},
		{"garbage", "release-2", nil, bumptag.ErrNoTagsFound},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			f := newFixture(t)
			f.runner.EXPECT().Run(gomock.Any(), "latest").Return(c.out, c.err)

			cfg := syncConfig()
			cfg.LatestCommand = []string{"latest"}

			_, err := f.tagger(cfg).ResolveLatest(context.Background())
			assert.ErrorIs(t, err, c.want)
		})
	}
}

func TestResolveLatest_Maintenance(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().Tags(gomock.Any()).Return([]string{"v1.4.2", "v2.0.0", "v1.5.1"}, nil)

	cfg := syncConfig()
	cfg.Select.Range = bumptag.Range{Max: "1"}

	v, err := f.tagger(cfg).ResolveLatest(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "v1.5.1", v.Tag())
}
