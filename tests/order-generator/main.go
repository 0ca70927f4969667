package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/segmentio/kafka-go"
)

type Address struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Company   string `json:"company,omitempty"`
	Address1  string `json:"address_1"`
	Address2  string `json:"address_2,omitempty"`
	City      string `json:"city"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
}

type LineItem struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
	Price     string `json:"price"`
}

type Order struct {
	ID          int64      `json:"id"`
	Number      string     `json:"number"`
	DateCreated string     `json:"date_created"`
	Total       string     `json:"total"`
	Billing     *Address   `json:"billing"`
	Shipping    *Address   `json:"shipping,omitempty"`
	LineItems   []LineItem `json:"line_items"`
}

var cities = []string{"Casablanca", "Rabat", "Marrakech", "Tanger", "Fès", "Agadir", "casa blanca", "RABAT "}

var firstNames = []string{"Amine", "Sara", "Youssef", "Khadija", "Omar", "Fatima"}

var lastNames = []string{"Benali", "Idrissi", "El Amrani", "Tazi", "Bouazza"}

func generateRandomOrder(id int64) Order {
	items := make([]LineItem, 0, rand.Intn(3)+1)
	total := 0
	for i := 0; i < cap(items); i++ {
		qty := rand.Intn(3) + 1
		price := rand.Intn(400) + 50
		total += qty * price
		items = append(items, LineItem{
			ProductID: fmt.Sprintf("SKU-%d", rand.Intn(500)+i),
			Quantity:  qty,
			Price:     strconv.Itoa(price) + ".00",
		})
	}

	billing := &Address{
		FirstName: firstNames[rand.Intn(len(firstNames))],
		LastName:  lastNames[rand.Intn(len(lastNames))],
		Address1:  fmt.Sprintf("%d Rue des Orangers", rand.Intn(100)+1),
		City:      cities[rand.Intn(len(cities))],
		Phone:     fmt.Sprintf("+2126%08d", rand.Intn(99999999)),
		Email:     fmt.Sprintf("user%d@example.com", rand.Intn(1000)),
	}

	order := Order{
		ID:          id,
		Number:      strconv.FormatInt(id, 10),
		DateCreated: time.Now().Format("2006-01-02T15:04:05"),
		Total:       strconv.Itoa(total) + ".00",
		Billing:     billing,
		LineItems:   items,
	}

	// Occasionally ship somewhere other than the billing address.
	if rand.Intn(4) == 0 {
		shipping := *billing
		shipping.FirstName = firstNames[rand.Intn(len(firstNames))]
		shipping.City = cities[rand.Intn(len(cities))]
		order.Shipping = &shipping
	}
	// Occasionally resend an older event to exercise deduplication.
	if rand.Intn(10) == 0 && id > 1 {
		order.ID = id - int64(rand.Intn(int(id)))
		order.Number = strconv.FormatInt(order.ID, 10)
	}
	return order
}

func main() {
	addr := kafka.TCP("localhost:9092")

	writer := &kafka.Writer{
		Addr:  addr,
		Topic: "shop-orders",
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	nextID := int64(1000)
	ticker := time.NewTicker(2 * time.Second)
	for {
		select {
		case <-ticker.C:
			nextID++
			order := generateRandomOrder(nextID)
			data, _ := json.Marshal(order)
			writer.WriteMessages(context.Background(), kafka.Message{Value: data})
			log.Println("order generated", order.ID)
		case <-ctx.Done():
			return
		}
	}
}
