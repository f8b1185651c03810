package entities

import (
	"bytes"
	"encoding/gob"
	"time"
)

type ItemKind string

const (
	KindProduct ItemKind = "product"
	KindService ItemKind = "service"
)

func (k ItemKind) Valid() bool {
	return k == KindProduct || k == KindService
}

type CatalogItem struct {
	ItemID  string
	StoreID string
	Name    string
	Price   int
	Kind    ItemKind
	Active  bool
}

// Snapshot is a store's catalog as last read from the database.
// Prices resolved against it are frozen into line items, later catalog
// changes never touch a placed order.
type Snapshot struct {
	StoreID string
	Items   []CatalogItem
	TakenAt time.Time
}

func (s Snapshot) Find(itemID string) (CatalogItem, bool) {
	for _, it := range s.Items {
		if it.ItemID == itemID {
			return it, true
		}
	}
	return CatalogItem{}, false
}

func (s *Snapshot) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(s); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (s *Snapshot) Unmarshal(data []byte) error {
	return gob.NewDecoder(bytes.NewBuffer(data)).Decode(s)
}

func init() {
	gob.Register(Snapshot{})
	gob.Register(CatalogItem{})
}
