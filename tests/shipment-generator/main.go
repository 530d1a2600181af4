package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"math/rand"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/segmentio/kafka-go"
)

// ShipmentEvent повторяет формат, который читает сервис из топика отгрузок.
type ShipmentEvent struct {
	OrderID string    `json:"order_id"`
	Type    string    `json:"type"`
	Carrier string    `json:"carrier"`
	At      time.Time `json:"at"`
}

var carriers = []string{"dhl", "ups", "cdek", "boxberry"}

func main() {
	brokers := flag.String("brokers", "localhost:9092", "comma separated kafka brokers")
	topic := flag.String("topic", "shipments", "shipment topic")
	orders := flag.String("orders", "", "comma separated order ids in APPROVED status")
	interval := flag.Duration("interval", 2*time.Second, "delay between events")
	flag.Parse()

	if *orders == "" {
		log.Fatal("no orders given, use -orders")
	}

	writer := &kafka.Writer{
		Addr:     kafka.TCP(strings.Split(*brokers, ",")...),
		Topic:    *topic,
		Balancer: &kafka.Hash{},
	}
	defer writer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	// сначала все отгрузки, затем доставки
	ids := strings.Split(*orders, ",")
	queue := make([]ShipmentEvent, 0, 2*len(ids))
	carrierOf := make(map[string]string, len(ids))
	for _, id := range ids {
		carrierOf[id] = carriers[rand.Intn(len(carriers))]
		queue = append(queue, ShipmentEvent{OrderID: id, Type: "shipped", Carrier: carrierOf[id]})
	}
	for _, id := range ids {
		queue = append(queue, ShipmentEvent{OrderID: id, Type: "delivered", Carrier: carrierOf[id]})
	}

	ticker := time.NewTicker(*interval)
	defer ticker.Stop()
	for _, event := range queue {
		select {
		case <-ticker.C:
			event.At = time.Now()
			data, _ := json.Marshal(event)
			err := writer.WriteMessages(ctx, kafka.Message{Key: []byte(event.OrderID), Value: data})
			if err != nil {
				log.Println("failed to write event:", err)
				continue
			}
			log.Println("event sent", event.OrderID, event.Type)
		case <-ctx.Done():
			return
		}
	}
}
