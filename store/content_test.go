package store_test

import (
	"testing"

	course "educa/models/course"
	"educa/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateContentAssignsOrderPerModule(t *testing.T) {
	db := testDB(t)
	ownerID, courseID := seedCourse(t, db, "content-order@educa.test")
	m1 := seedModule(t, db, courseID, "First module")
	m2 := seedModule(t, db, courseID, "Second module")

	for want := 0; want < 3; want++ {
		text := &course.Text{ItemBase: course.ItemBase{OwnerID: ownerID, Title: "Note"}, Body: "hello"}
		ct, err := store.CreateContentWithItem(db, m1.ID, text, nil)
		require.NoError(t, err)
		require.NotNil(t, ct.OrderIndex)
		assert.Equal(t, want, *ct.OrderIndex)
	}

	// Sibling counts do not leak across modules
	text := &course.Text{ItemBase: course.ItemBase{OwnerID: ownerID, Title: "Other"}, Body: "hi"}
	ct, err := store.CreateContentWithItem(db, m2.ID, text, nil)
	require.NoError(t, err)
	require.NotNil(t, ct.OrderIndex)
	assert.Equal(t, 0, *ct.OrderIndex)
}

func TestCreateContentWithoutModuleFails(t *testing.T) {
	db := testDB(t)

	text := &course.Text{ItemBase: course.ItemBase{OwnerID: 1, Title: "Orphan"}, Body: "x"}
	_, err := store.CreateContentWithItem(db, 0, text, nil)
	assert.ErrorIs(t, err, course.ErrOrderScopeUnset)
}

func TestContentRejectsUnknownItemType(t *testing.T) {
	db := testDB(t)
	_, courseID := seedCourse(t, db, "bad-type@educa.test")
	m := seedModule(t, db, courseID, "Module")

	ct := course.Content{ModuleID: m.ID, ItemType: "quiz", ItemID: 1}
	err := db.Create(&ct).Error
	assert.ErrorIs(t, err, course.ErrInvalidItemType)
}

func TestLoadContentItemDispatchesByType(t *testing.T) {
	db := testDB(t)
	ownerID, courseID := seedCourse(t, db, "dispatch@educa.test")
	m := seedModule(t, db, courseID, "Mixed module")

	items := []course.Item{
		&course.Text{ItemBase: course.ItemBase{OwnerID: ownerID, Title: "Reading"}, Body: "chapter one"},
		&course.Video{ItemBase: course.ItemBase{OwnerID: ownerID, Title: "Lecture"}, URL: "https://vimeo.com/1234"},
		&course.Image{ItemBase: course.ItemBase{OwnerID: ownerID, Title: "Diagram"}, FilePath: "/uploads/diagram.png"},
		&course.File{ItemBase: course.ItemBase{OwnerID: ownerID, Title: "Slides"}, FilePath: "/uploads/slides.pdf"},
	}

	wantKinds := []string{
		course.ItemTypeText,
		course.ItemTypeVideo,
		course.ItemTypeImage,
		course.ItemTypeFile,
	}

	for i, item := range items {
		ct, err := store.CreateContentWithItem(db, m.ID, item, nil)
		require.NoError(t, err)
		assert.Equal(t, wantKinds[i], ct.ItemType)

		loaded, err := store.LoadContentItem(db, ct)
		require.NoError(t, err)
		assert.Equal(t, wantKinds[i], loaded.ItemKind())

		rendered := loaded.Render()
		assert.Equal(t, wantKinds[i], rendered["kind"])
	}

	// Each kind renders its own payload shape
	contents, err := store.ListContentsByModule(db, m.ID)
	require.NoError(t, err)
	require.Len(t, contents, 4)

	text, err := store.LoadContentItem(db, &contents[0])
	require.NoError(t, err)
	assert.Equal(t, "chapter one", text.Render()["body"])

	video, err := store.LoadContentItem(db, &contents[1])
	require.NoError(t, err)
	assert.Equal(t, "https://vimeo.com/1234", video.Render()["embed_url"])
}

func TestNewItemUnknownTag(t *testing.T) {
	_, err := course.NewItem("podcast")
	assert.ErrorIs(t, err, course.ErrInvalidItemType)

	for _, tag := range []string{
		course.ItemTypeText, course.ItemTypeVideo, course.ItemTypeImage, course.ItemTypeFile,
	} {
		item, err := course.NewItem(tag)
		require.NoError(t, err)
		assert.Equal(t, tag, item.ItemKind())
	}
}

func TestReorderContentsScopedToOwner(t *testing.T) {
	db := testDB(t)
	ownerID, courseID := seedCourse(t, db, "ct-reorder@educa.test")
	_, foreignCourse := seedCourse(t, db, "ct-foreign@educa.test")
	m := seedModule(t, db, courseID, "Mine")
	fm := seedModule(t, db, foreignCourse, "Theirs")

	var mine [2]*course.Content
	for i := range mine {
		text := &course.Text{ItemBase: course.ItemBase{OwnerID: ownerID, Title: "Note"}, Body: "x"}
		ct, err := store.CreateContentWithItem(db, m.ID, text, nil)
		require.NoError(t, err)
		mine[i] = ct
	}

	foreignText := &course.Text{ItemBase: course.ItemBase{Title: "Foreign"}, Body: "y"}
	foreign, err := store.CreateContentWithItem(db, fm.ID, foreignText, nil)
	require.NoError(t, err)

	err = store.ReorderContents(db, ownerID, map[uint]int{
		mine[0].ID: 1,
		mine[1].ID: 0,
		foreign.ID: 9,
	})
	require.NoError(t, err)

	contents, err := store.ListContentsByModule(db, m.ID)
	require.NoError(t, err)
	require.Len(t, contents, 2)
	assert.Equal(t, mine[1].ID, contents[0].ID)
	assert.Equal(t, mine[0].ID, contents[1].ID)

	kept, err := store.GetContent(db, foreign.ID)
	require.NoError(t, err)
	require.NotNil(t, kept.OrderIndex)
	assert.Equal(t, 0, *kept.OrderIndex)
}

func TestDeleteContentRemovesItem(t *testing.T) {
	db := testDB(t)
	ownerID, courseID := seedCourse(t, db, "del-content@educa.test")
	m := seedModule(t, db, courseID, "Module")

	video := &course.Video{ItemBase: course.ItemBase{OwnerID: ownerID, Title: "Lecture"}, URL: "https://vimeo.com/99"}
	ct, err := store.CreateContentWithItem(db, m.ID, video, nil)
	require.NoError(t, err)

	require.NoError(t, store.DeleteContent(db, ct))

	_, err = store.GetContent(db, ct.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)

	var count int64
	require.NoError(t, db.Model(&course.Video{}).Where("id = ?", video.ID).Count(&count).Error)
	assert.Zero(t, count)
}

func TestDeleteCourseCascades(t *testing.T) {
	db := testDB(t)
	ownerID, courseID := seedCourse(t, db, "del-course@educa.test")
	m := seedModule(t, db, courseID, "Module")

	text := &course.Text{ItemBase: course.ItemBase{OwnerID: ownerID, Title: "Note"}, Body: "z"}
	ct, err := store.CreateContentWithItem(db, m.ID, text, nil)
	require.NoError(t, err)

	require.NoError(t, store.DeleteCourse(db, courseID))

	_, err = store.GetCourse(db, courseID)
	assert.ErrorIs(t, err, store.ErrNotFound)
	_, err = store.GetModule(db, m.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)
	_, err = store.GetContent(db, ct.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)
}
