package realtime

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"linksphere_backend/internals/configs"
	database "linksphere_backend/internals/databases"
	LinkModel "linksphere_backend/internals/features/links/model"
	storage "linksphere_backend/internals/helpers/storage"
	"linksphere_backend/internals/store"
)

func TestMain(m *testing.M) {
	configs.LoadEnv()
	m.Run()
}

func newHubForTest(t *testing.T) (*Hub, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	blobStorage, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)
	return NewHub(db, blobStorage), db
}

func newTestSubscriber(h *Hub) *Client {
	// subscriber tanpa koneksi: cukup queue send untuk mengamati frame
	return &Client{hub: h, send: make(chan []byte, sendQueueSize)}
}

func recvEnvelope(t *testing.T, ch chan []byte) Envelope {
	t.Helper()
	select {
	case raw := <-ch:
		var env Envelope
		require.NoError(t, sonic.Unmarshal(raw, &env))
		return env
	case <-time.After(2 * time.Second):
		t.Fatal("timeout menunggu frame")
		return Envelope{}
	}
}

func TestRegisterSendsSnapshotOnlyToNewSubscriber(t *testing.T) {
	h, db := newHubForTest(t)
	link := LinkModel.LinkModel{LinkTitle: "Channel", LinkURL: "https://yt.example"}
	require.NoError(t, store.CreateOne(db, &link))

	go h.Run()
	defer h.Stop()

	first := newTestSubscriber(h)
	h.register <- first
	env := recvEnvelope(t, first.send)
	require.Equal(t, EventInitialData, env.Event)

	var snapshot Snapshot
	require.NoError(t, sonic.Unmarshal(env.Data, &snapshot))
	require.Len(t, snapshot.Links, 1)
	assert.Equal(t, "Channel", snapshot.Links[0].LinkTitle)
	assert.Equal(t, "LinkSphere", snapshot.Settings.SiteName, "settings dibuat lazy dengan default")

	// subscriber kedua connect: hanya dia yang dapat snapshot
	second := newTestSubscriber(h)
	h.register <- second
	env = recvEnvelope(t, second.send)
	assert.Equal(t, EventInitialData, env.Event)
	assert.Empty(t, first.send, "subscriber lama tidak menerima snapshot ulang")
}

func TestBroadcastFansOutToAllSubscribers(t *testing.T) {
	h, _ := newHubForTest(t)
	go h.Run()
	defer h.Stop()

	first := newTestSubscriber(h)
	second := newTestSubscriber(h)
	h.register <- first
	h.register <- second
	recvEnvelope(t, first.send)  // snapshot
	recvEnvelope(t, second.send) // snapshot

	h.BroadcastContent(TypeLinks, ActionAdd, map[string]string{"id": "l1", "title": "Blog"})

	for _, sub := range []*Client{first, second} {
		env := recvEnvelope(t, sub.send)
		require.Equal(t, EventContentUpdated, env.Event)

		var evt ContentEvent
		require.NoError(t, sonic.Unmarshal(env.Data, &evt))
		assert.Equal(t, TypeLinks, evt.Type)
		assert.Equal(t, ActionAdd, evt.Action)
	}
}

func TestStopDisconnectsSubscribers(t *testing.T) {
	h, _ := newHubForTest(t)
	go h.Run()

	sub := newTestSubscriber(h)
	h.register <- sub
	recvEnvelope(t, sub.send)

	h.Stop()

	_, open := <-sub.send
	assert.False(t, open, "queue subscriber ditutup saat hub berhenti")
}
