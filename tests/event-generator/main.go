package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"os/signal"
	"syscall"
	"time"

	"github.com/segmentio/kafka-go"
)

type CatalogEvent struct {
	Op      string `json:"op"`
	StoreID string `json:"store_id"`
	ItemID  string `json:"item_id"`
	Name    string `json:"name,omitempty"`
	Price   int    `json:"price,omitempty"`
	Kind    string `json:"kind,omitempty"`
	Active  bool   `json:"active,omitempty"`
}

var stores = []string{"demo-store", "mug-shop", "print-studio"}

func randomString(n int) string {
	letters := []rune("abcdefghijklmnopqrstuvwxyz0123456789")
	b := make([]rune, n)
	for i := range b {
		b[i] = letters[rand.Intn(len(letters))]
	}
	return string(b)
}

func generateRandomEvent() CatalogEvent {
	storeID := stores[rand.Intn(len(stores))]
	itemID := fmt.Sprintf("item-%d", rand.Intn(50))

	if rand.Intn(10) == 0 {
		return CatalogEvent{Op: "delete", StoreID: storeID, ItemID: itemID}
	}

	kind := "product"
	if rand.Intn(4) == 0 {
		kind = "service"
	}

	return CatalogEvent{
		Op:      "upsert",
		StoreID: storeID,
		ItemID:  itemID,
		Name:    "Item " + randomString(5),
		Price:   rand.Intn(5000) + 100,
		Kind:    kind,
		Active:  rand.Intn(10) != 0,
	}
}

func main() {
	addr := kafka.TCP("localhost:9092")

	writer := &kafka.Writer{
		Addr:  addr,
		Topic: "catalog-events",
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	ticker := time.NewTicker(2 * time.Second)
	for {
		select {
		case <-ticker.C:
			event := generateRandomEvent()
			data, _ := json.Marshal(event)
			writer.WriteMessages(context.Background(), kafka.Message{Value: data})
			log.Println("event generated", event.Op, event.StoreID, event.ItemID)
		case <-ctx.Done():
			return
		}
	}
}
