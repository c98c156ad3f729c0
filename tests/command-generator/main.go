// command-generator walks the given orders through the delivery statuses by
// writing operator commands to the commands topic.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/segmentio/kafka-go"
)

type command struct {
	OrderID string `json:"order_id"`
	Action  string `json:"action,omitempty"`
	Status  string `json:"status,omitempty"`
	Note    string `json:"note,omitempty"`
}

var steps = []string{"confirmed", "shipping", "delivered"}

func main() {
	brokers := flag.String("brokers", "localhost:9092", "comma separated kafka brokers")
	topic := flag.String("topic", "order-status-commands", "commands topic")
	orders := flag.String("orders", "", "comma separated order ids")
	interval := flag.Duration("interval", 2*time.Second, "delay between commands")
	refund := flag.Bool("refund", false, "refund each order after delivery")
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

	var queue []command
	for _, id := range strings.Split(*orders, ",") {
		for _, s := range steps {
			queue = append(queue, command{OrderID: id, Status: s, Note: "generated"})
		}
		if *refund {
			queue = append(queue, command{OrderID: id, Action: "refund"})
		}
	}

	ticker := time.NewTicker(*interval)
	defer ticker.Stop()
	for _, cmd := range queue {
		select {
		case <-ticker.C:
		case <-ctx.Done():
			return
		}

		data, _ := json.Marshal(cmd)
		if err := writer.WriteMessages(ctx, kafka.Message{Key: []byte(cmd.OrderID), Value: data}); err != nil {
			log.Println("failed to write command:", err)
			continue
		}
		log.Println("command sent", cmd.OrderID, cmd.Action, cmd.Status)
	}
}
