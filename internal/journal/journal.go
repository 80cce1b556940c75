package journal

import (
	"encoding/json"
	"sort"
	"time"

	"github.com/numapde/pubfork/internal/app"
	"github.com/pkg/errors"
)

// KVStore provides simple kv data storage
type KVStore interface {
	UpdateKey(key []byte, data []byte) error
	ForEachKey(fn func(key []byte, data []byte) error) error
}

// Entry describes one repository created by the tool.
type Entry struct {
	ProjectID         int       `json:"project_id"`
	Name              string    `json:"name"`
	PathWithNamespace string    `json:"path_with_namespace"`
	SSHURLToRepo      string    `json:"ssh_url_to_repo"`
	HTTPURLToRepo     string    `json:"http_url_to_repo"`
	WebURL            string    `json:"web_url"`
	CreatedAt         time.Time `json:"created_at"`
}

// Journal keeps a local record of repositories created by the tool.
type Journal struct {
	store KVStore
}

var _ app.Journal = &Journal{}

// New creates new Journal instance backed by given store.
func New(store KVStore) *Journal {
	return &Journal{store: store}
}

// Record stores an entry for given project, keyed by its path with namespace.
// Recording the same project again overwrites the previous entry.
func (j *Journal) Record(p app.Project, createdAt time.Time) error {
	e := Entry{
		ProjectID:         p.ID,
		Name:              p.Name,
		PathWithNamespace: p.PathWithNamespace,
		SSHURLToRepo:      p.SSHURLToRepo,
		HTTPURLToRepo:     p.HTTPURLToRepo,
		WebURL:            p.WebURL,
		CreatedAt:         createdAt,
	}

	data, err := json.Marshal(e)
	if err != nil {
		return errors.Wrap(err, "marshalling journal entry")
	}

	return errors.Wrap(j.store.UpdateKey([]byte(p.PathWithNamespace), data), "storing journal entry")
}

// List returns all recorded entries, newest first.
func (j *Journal) List() ([]Entry, error) {
	var es []Entry
	if err := j.store.ForEachKey(func(key []byte, data []byte) error {
		var e Entry
		if err := json.Unmarshal(data, &e); err != nil {
			return errors.Wrapf(err, "unmarshalling journal entry %s", key)
		}
		es = append(es, e)
		return nil
	}); err != nil {
		return nil, errors.Wrap(err, "reading journal entries")
	}

	sort.Slice(es, func(i, j int) bool {
		return es[i].CreatedAt.After(es[j].CreatedAt)
	})

	return es, nil
}
