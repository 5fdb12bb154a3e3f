package page

import (
	"testing"
	"time"

	"solutions-admin/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createPage(t *testing.T, req *SaveRequest) *Page {
	t.Helper()
	p, err := Save(req)
	require.NoError(t, err)
	require.NotNil(t, p)
	return p
}

func TestSaveCreatesDraftByDefault(t *testing.T) {
	testutil.SetupDB(t)

	p := createPage(t, &SaveRequest{Slug: "direito-civil", Title: "Direito Civil"})

	assert.Equal(t, StatusDraft, p.Status)
	assert.Nil(t, p.PublishedAt)
	assert.Equal(t, Blocks{}, p.Blocks)

	got, err := GetBySlug("direito-civil")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, p.ID, got.ID)
}

func TestSaveCreatePublishedStampsPublishTime(t *testing.T) {
	testutil.SetupDB(t)

	p := createPage(t, &SaveRequest{Slug: "trabalhista", Title: "Trabalhista", Status: StatusPublished})

	require.NotNil(t, p.PublishedAt)
	assert.WithinDuration(t, time.Now().UTC(), *p.PublishedAt, 5*time.Second)
}

func TestSaveRejectsDuplicateSlug(t *testing.T) {
	testutil.SetupDB(t)

	createPage(t, &SaveRequest{Slug: "societario", Title: "Societário"})

	_, err := Save(&SaveRequest{Slug: "societario", Title: "Outro"})
	assert.ErrorIs(t, err, ErrSlugTaken)
}

func TestSaveUpdateKeepsPublishTime(t *testing.T) {
	testutil.SetupDB(t)

	p := createPage(t, &SaveRequest{Slug: "penal", Title: "Penal", Status: StatusPublished})
	firstPublish := *p.PublishedAt

	updated, err := Save(&SaveRequest{
		ID:     &p.ID,
		Slug:   "penal",
		Title:  "Penal Empresarial",
		Status: StatusPublished,
	})
	require.NoError(t, err)

	assert.Equal(t, "Penal Empresarial", updated.Title)
	require.NotNil(t, updated.PublishedAt)
	assert.True(t, updated.PublishedAt.Equal(firstPublish))
}

func TestSaveUpdateUnknownID(t *testing.T) {
	testutil.SetupDB(t)

	missing := int64(999)
	_, err := Save(&SaveRequest{ID: &missing, Slug: "x-y", Title: "XY"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSaveNormalizesBlocks(t *testing.T) {
	testutil.SetupDB(t)

	p := createPage(t, &SaveRequest{
		Slug:  "ambiental",
		Title: "Ambiental",
		Blocks: Blocks{
			{ID: "faq", Type: BlockFAQ, Order: 10},
			{ID: "hero", Type: BlockHero, Order: 2},
		},
	})

	require.Len(t, p.Blocks, 2)
	assert.Equal(t, "hero", p.Blocks[0].ID)
	assert.Equal(t, 0, p.Blocks[0].Order)
	assert.Equal(t, "faq", p.Blocks[1].ID)
	assert.Equal(t, 1, p.Blocks[1].Order)
}

func TestSaveRejectsInvalidBlockType(t *testing.T) {
	testutil.SetupDB(t)

	_, err := Save(&SaveRequest{
		Slug:   "imobiliario",
		Title:  "Imobiliário",
		Blocks: Blocks{{ID: "x", Type: "slideshow"}},
	})
	assert.ErrorIs(t, err, ErrInvalidBlock)
}

func TestPublishIsIdempotentOnPublishTime(t *testing.T) {
	testutil.SetupDB(t)

	p := createPage(t, &SaveRequest{Slug: "tributario", Title: "Tributário"})

	published, err := Publish(p.ID)
	require.NoError(t, err)
	require.NotNil(t, published.PublishedAt)
	first := *published.PublishedAt

	_, err = Unpublish(p.ID)
	require.NoError(t, err)

	again, err := Publish(p.ID)
	require.NoError(t, err)
	require.NotNil(t, again.PublishedAt)
	assert.True(t, again.PublishedAt.Equal(first), "republish must keep the first publish time")
}

func TestUnpublishKeepsPublishTime(t *testing.T) {
	testutil.SetupDB(t)

	p := createPage(t, &SaveRequest{Slug: "consumidor", Title: "Consumidor", Status: StatusPublished})

	draft, err := Unpublish(p.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusDraft, draft.Status)
	assert.NotNil(t, draft.PublishedAt)
}

func TestArchiveFromAnyState(t *testing.T) {
	testutil.SetupDB(t)

	draft := createPage(t, &SaveRequest{Slug: "draft-page", Title: "Draft"})
	published := createPage(t, &SaveRequest{Slug: "pub-page", Title: "Pub", Status: StatusPublished})

	for _, p := range []*Page{draft, published} {
		archived, err := Archive(p.ID)
		require.NoError(t, err)
		assert.Equal(t, StatusArchived, archived.Status)
	}
}

func TestTransitionsUnknownID(t *testing.T) {
	testutil.SetupDB(t)

	_, err := Publish(404)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = Unpublish(404)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = Archive(404)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDuplicateCreatesFreshDraft(t *testing.T) {
	testutil.SetupDB(t)

	sub := "Planejamento tributário"
	src := createPage(t, &SaveRequest{
		Slug:     "tributario",
		Title:    "Tributário",
		Subtitle: &sub,
		Status:   StatusPublished,
		Blocks:   Blocks{{ID: "hero", Type: BlockHero, Order: 0}},
	})

	dup, err := Duplicate(src.ID)
	require.NoError(t, err)

	assert.NotEqual(t, src.ID, dup.ID)
	assert.Contains(t, dup.Slug, "tributario-copia-")
	assert.Equal(t, "Tributário (cópia)", dup.Title)
	assert.Equal(t, StatusDraft, dup.Status)
	assert.Nil(t, dup.PublishedAt)
	require.NotNil(t, dup.Subtitle)
	assert.Equal(t, sub, *dup.Subtitle)
	require.Len(t, dup.Blocks, 1)
	assert.Equal(t, "hero", dup.Blocks[0].ID)

	// The source is untouched.
	orig, err := GetByID(src.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusPublished, orig.Status)
}

func TestDuplicateUnknownID(t *testing.T) {
	testutil.SetupDB(t)

	_, err := Duplicate(404)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeletePage(t *testing.T) {
	testutil.SetupDB(t)

	p := createPage(t, &SaveRequest{Slug: "temp", Title: "Temp"})

	require.NoError(t, Delete(p.ID))

	got, err := GetByID(p.ID)
	require.NoError(t, err)
	assert.Nil(t, got)

	assert.ErrorIs(t, Delete(p.ID), ErrNotFound)
}

func TestLinkAndUnlinkVideo(t *testing.T) {
	db := testutil.SetupDB(t)

	p := createPage(t, &SaveRequest{Slug: "com-video", Title: "Com Vídeo"})

	_, err := db.Exec(`INSERT INTO videos (id, title, source, url) VALUES (1, 'Intro', 'youtube', 'https://youtu.be/x')`)
	require.NoError(t, err)

	vid := int64(1)
	linked, err := LinkVideo(p.ID, &vid)
	require.NoError(t, err)
	require.NotNil(t, linked.VideoID)
	assert.Equal(t, vid, *linked.VideoID)

	cleared, err := LinkVideo(p.ID, nil)
	require.NoError(t, err)
	assert.Nil(t, cleared.VideoID)

	_, err = LinkVideo(404, &vid)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListFilters(t *testing.T) {
	db := testutil.SetupDB(t)

	createPage(t, &SaveRequest{Slug: "direito-tributario", Title: "Direito Tributário", Status: StatusPublished})
	createPage(t, &SaveRequest{Slug: "direito-civil", Title: "Direito Civil"})
	archived := createPage(t, &SaveRequest{Slug: "antigo", Title: "Antigo"})
	_, err := Archive(archived.ID)
	require.NoError(t, err)

	all, err := List(Filters{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	published, err := List(Filters{Status: "published"})
	require.NoError(t, err)
	require.Len(t, published, 1)
	assert.Equal(t, "direito-tributario", published[0].Slug)

	// Case-insensitive search across title and slug.
	found, err := List(Filters{Search: "TRIBUT"})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "direito-tributario", found[0].Slug)

	_, err = db.Exec(`INSERT INTO videos (id, title, source, url) VALUES (9, 'V', 'vimeo', 'https://vimeo.com/9')`)
	require.NoError(t, err)
	vid := int64(9)
	_, err = LinkVideo(published[0].ID, &vid)
	require.NoError(t, err)

	hasVideo := true
	withVideo, err := List(Filters{HasVideo: &hasVideo})
	require.NoError(t, err)
	require.Len(t, withVideo, 1)
	assert.Equal(t, "direito-tributario", withVideo[0].Slug)

	hasVideo = false
	withoutVideo, err := List(Filters{HasVideo: &hasVideo})
	require.NoError(t, err)
	assert.Len(t, withoutVideo, 2)
}

func TestListOrdersByLastUpdate(t *testing.T) {
	testutil.SetupDB(t)

	first := createPage(t, &SaveRequest{Slug: "primeiro", Title: "Primeiro"})
	createPage(t, &SaveRequest{Slug: "segundo", Title: "Segundo"})

	time.Sleep(10 * time.Millisecond)
	_, err := Save(&SaveRequest{ID: &first.ID, Slug: "primeiro", Title: "Primeiro v2"})
	require.NoError(t, err)

	pages, err := List(Filters{})
	require.NoError(t, err)
	require.Len(t, pages, 2)
	assert.Equal(t, "primeiro", pages[0].Slug)
}
