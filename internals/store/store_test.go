package store_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"linksphere_backend/internals/features/links/model"
	"linksphere_backend/internals/store"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.LinkModel{}))
	return db
}

func TestCreateAndFindByID(t *testing.T) {
	db := newTestDB(t)

	link := model.LinkModel{LinkTitle: "Portofolio", LinkURL: "https://example.com"}
	require.NoError(t, store.CreateOne(db, &link))
	require.NotEmpty(t, link.LinkID, "id harus di-generate server-side")

	found, err := store.FindByID[model.LinkModel](db, "link_id", link.LinkID)
	require.NoError(t, err)
	assert.Equal(t, "Portofolio", found.LinkTitle)
	assert.Equal(t, "https://example.com", found.LinkURL)
	assert.False(t, found.LinkCreatedAt.IsZero())
}

func TestFindByIDNotFound(t *testing.T) {
	db := newTestDB(t)

	_, err := store.FindByID[model.LinkModel](db, "link_id", "tidak-ada")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestSaveOneUpdatesRecord(t *testing.T) {
	db := newTestDB(t)

	link := model.LinkModel{LinkTitle: "Lama", LinkURL: "https://a.example"}
	require.NoError(t, store.CreateOne(db, &link))

	link.LinkTitle = "Baru"
	require.NoError(t, store.SaveOne(db, &link))

	found, err := store.FindByID[model.LinkModel](db, "link_id", link.LinkID)
	require.NoError(t, err)
	assert.Equal(t, "Baru", found.LinkTitle)
	assert.Equal(t, "https://a.example", found.LinkURL, "field lain tidak ikut berubah")
}

func TestListAllNewestFirst(t *testing.T) {
	db := newTestDB(t)

	older := model.LinkModel{LinkTitle: "Lama", LinkURL: "https://a.example"}
	require.NoError(t, store.CreateOne(db, &older))
	require.NoError(t, db.Model(&model.LinkModel{}).
		Where("link_id = ?", older.LinkID).
		Update("link_created_at", time.Now().Add(-time.Hour)).Error)

	newer := model.LinkModel{LinkTitle: "Baru", LinkURL: "https://b.example"}
	require.NoError(t, store.CreateOne(db, &newer))

	links, err := store.ListAll[model.LinkModel](db, "link_created_at DESC")
	require.NoError(t, err)
	require.Len(t, links, 2)
	assert.Equal(t, "Baru", links[0].LinkTitle)
	assert.Equal(t, "Lama", links[1].LinkTitle)
}

func TestDeleteByIDTwice(t *testing.T) {
	db := newTestDB(t)

	link := model.LinkModel{LinkTitle: "Sekali", LinkURL: "https://x.example"}
	require.NoError(t, store.CreateOne(db, &link))

	deleted, err := store.DeleteByID[model.LinkModel](db, "link_id", link.LinkID)
	require.NoError(t, err)
	assert.Equal(t, "Sekali", deleted.LinkTitle, "record yang dihapus dikembalikan untuk broadcast")

	// delete kedua: record sudah tidak ada
	_, err = store.DeleteByID[model.LinkModel](db, "link_id", link.LinkID)
	assert.ErrorIs(t, err, store.ErrNotFound)

	n, err := store.CountAll[model.LinkModel](db)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestSearchColumnsCaseInsensitive(t *testing.T) {
	db := newTestDB(t)

	seed := []model.LinkModel{
		{LinkTitle: "Channel YouTube", LinkURL: "https://yt.example"},
		{LinkTitle: "Blog pribadi", LinkDescription: "tulisan soal YouTube", LinkURL: "https://blog.example"},
		{LinkTitle: "Toko online", LinkURL: "https://shop.example"},
	}
	for i := range seed {
		require.NoError(t, store.CreateOne(db, &seed[i]))
	}

	// match di title maupun description, case-insensitive
	got, err := store.SearchColumns[model.LinkModel](db, "youtube", "link_title", "link_description")
	require.NoError(t, err)
	assert.Len(t, got, 2)

	got, err = store.SearchColumns[model.LinkModel](db, "TOKO", "link_title", "link_description")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Toko online", got[0].LinkTitle)

	got, err = store.SearchColumns[model.LinkModel](db, "tidakada", "link_title", "link_description")
	require.NoError(t, err)
	assert.Empty(t, got)
}
