package cache_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/vigil/internal/adapters/fs"
	"go.trai.ch/vigil/internal/core/domain"
	"go.trai.ch/vigil/internal/core/ports/mocks"
	"go.trai.ch/vigil/internal/engine/cache"
	"go.uber.org/mock/gomock"
)

func score(v float64) *float64 { return &v }

func TestReviewCache_HitRequiresSameContent(t *testing.T) {
	c := cache.NewReviewCache(fs.NewHasher())

	for i := range 20 {
		path := fmt.Sprintf("/src/File%d.cs", i)
		content := fmt.Sprintf("class File%d { }", i)
		want := &domain.ReviewResult{Score: score(float64(i))}

		c.Put(cache.ReviewEntry{Path: path, Content: content, Result: want})

		assert.Same(t, want, c.Get(cache.ReviewQuery{Path: path, Content: content}))
		assert.Nil(t, c.Get(cache.ReviewQuery{Path: path, Content: content + " "}))
	}
}

func TestReviewCache_SlotsAreIndependent(t *testing.T) {
	c := cache.NewReviewCache(fs.NewHasher())
	working := &domain.ReviewResult{Score: score(8.1)}
	baseline := &domain.ReviewResult{Score: score(9.4)}

	c.Put(cache.ReviewEntry{Path: "/src/A.cs", Content: "v2", Kind: domain.ReviewWorking, Result: working})
	c.Put(cache.ReviewEntry{Path: "/src/A.cs", Content: "v1", Kind: domain.ReviewBaseline, Result: baseline})

	assert.Same(t, working, c.Get(cache.ReviewQuery{Path: "/src/A.cs", Content: "v2", Kind: domain.ReviewWorking}))
	assert.Same(t, baseline, c.Get(cache.ReviewQuery{Path: "/src/A.cs", Content: "v1", Kind: domain.ReviewBaseline}))

	// Right content, wrong slot.
	assert.Nil(t, c.Get(cache.ReviewQuery{Path: "/src/A.cs", Content: "v1", Kind: domain.ReviewWorking}))
	assert.Nil(t, c.Get(cache.ReviewQuery{Path: "/src/A.cs", Content: "v2", Kind: domain.ReviewBaseline}))

	assert.Equal(t, []string{"/src/A.cs", "/src/A.cs#baseline"}, c.Keys())
}

func TestReviewCache_PathIsCleaned(t *testing.T) {
	c := cache.NewReviewCache(fs.NewHasher())
	want := &domain.ReviewResult{}

	c.Put(cache.ReviewEntry{Path: "/src/./lib/../A.cs", Content: "x", Result: want})
	assert.Same(t, want, c.Get(cache.ReviewQuery{Path: "/src/A.cs", Content: "x"}))
}

func TestReviewCache_PutOverwrites(t *testing.T) {
	c := cache.NewReviewCache(fs.NewHasher())
	first := &domain.ReviewResult{Score: score(1)}
	second := &domain.ReviewResult{Score: score(2)}

	c.Put(cache.ReviewEntry{Path: "/src/A.cs", Content: "C1", Result: first})
	c.Put(cache.ReviewEntry{Path: "/src/A.cs", Content: "C2", Result: second})

	assert.Nil(t, c.Get(cache.ReviewQuery{Path: "/src/A.cs", Content: "C1"}))
	assert.Same(t, second, c.Get(cache.ReviewQuery{Path: "/src/A.cs", Content: "C2"}))
}

func TestReviewCache_PathLifecycle(t *testing.T) {
	c := cache.NewReviewCache(fs.NewHasher())
	working := &domain.ReviewResult{}
	baseline := &domain.ReviewResult{}

	seed := func() {
		c.Clear()
		c.Put(cache.ReviewEntry{Path: "/src/A.cs", Content: "w", Result: working})
		c.Put(cache.ReviewEntry{Path: "/src/A.cs", Content: "b", Kind: domain.ReviewBaseline, Result: baseline})
		c.Put(cache.ReviewEntry{Path: "/src/Other.cs", Content: "o", Result: &domain.ReviewResult{}})
	}

	t.Run("rename moves both slots", func(t *testing.T) {
		seed()
		c.RenamePath("/src/A.cs", "/src/B.cs")

		assert.Nil(t, c.Get(cache.ReviewQuery{Path: "/src/A.cs", Content: "w"}))
		assert.Same(t, working, c.Get(cache.ReviewQuery{Path: "/src/B.cs", Content: "w"}))
		assert.Same(t, baseline, c.Get(cache.ReviewQuery{Path: "/src/B.cs", Content: "b", Kind: domain.ReviewBaseline}))
	})

	t.Run("remove drops both slots", func(t *testing.T) {
		seed()
		c.RemovePath("/src/A.cs")
		assert.Equal(t, []string{"/src/Other.cs"}, c.Keys())
	})

	t.Run("invalidate drops both slots", func(t *testing.T) {
		seed()
		c.InvalidatePath("/src/A.cs")
		assert.Equal(t, []string{"/src/Other.cs"}, c.Keys())
	})

	t.Run("key-level operations", func(t *testing.T) {
		seed()
		c.UpdateKey(cache.ReviewKey("/src/A.cs", domain.ReviewWorking), cache.ReviewKey("/src/C.cs", domain.ReviewWorking))
		c.Remove(cache.ReviewKey("/src/A.cs", domain.ReviewBaseline))
		c.Invalidate(cache.ReviewKey("/src/Other.cs", domain.ReviewWorking))
		assert.Equal(t, []string{"/src/C.cs"}, c.Keys())
	})

	t.Run("clear drops everything", func(t *testing.T) {
		seed()
		c.Clear()
		assert.Empty(t, c.Keys())
	})
}

func TestReviewCache_ComparesDigests(t *testing.T) {
	ctrl := gomock.NewController(t)
	hasher := mocks.NewMockContentHasher(ctrl)
	hasher.EXPECT().Digest("C1").Return(domain.ContentDigest("d1")).Times(2)
	hasher.EXPECT().Digest("C1 reformatted").Return(domain.ContentDigest("d1"))

	c := cache.NewReviewCache(hasher)
	want := &domain.ReviewResult{}
	c.Put(cache.ReviewEntry{Path: "/src/A.cs", Content: "C1", Result: want})

	// Only digests are compared, never the content itself.
	assert.Same(t, want, c.Get(cache.ReviewQuery{Path: "/src/A.cs", Content: "C1"}))
	assert.Same(t, want, c.Get(cache.ReviewQuery{Path: "/src/A.cs", Content: "C1 reformatted"}))
}

func TestReviewCache_Subscribe(t *testing.T) {
	c := cache.NewReviewCache(fs.NewHasher())

	var keys []string
	unsubscribe := c.Subscribe(func(u cache.Update) { keys = append(keys, u.Key) })
	defer unsubscribe()

	c.Put(cache.ReviewEntry{Path: "/src/A.cs", Content: "x", Kind: domain.ReviewBaseline})
	require.Equal(t, []string{"/src/A.cs#baseline"}, keys)
}
