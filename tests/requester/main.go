package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"sync"
	"time"
)

const baseURL = "http://localhost:8080"

// товары из демо-каталога in-memory режима
var products = []string{"vinyl-kind-of-blue", "cd-ok-computer", "bluray-blade-runner", "cassette-nevermind"}

func main() {
	for {
		var wg sync.WaitGroup
		for range rand.Intn(5) + 1 {
			wg.Go(walkOrder)
		}
		wg.Wait()
		time.Sleep(200 * time.Millisecond)
	}
}

// walkOrder проводит заказ по жизненному циклу; часть заказов отменяется
// или отклоняется, чтобы резервы и возвраты тоже нагружались.
func walkOrder() {
	var order struct {
		ID string `json:"id"`
	}
	cart := map[string]any{
		"customer_id": fmt.Sprintf("customer-%d", rand.Intn(100)),
		"items": []map[string]any{
			{"product_id": products[rand.Intn(len(products))], "quantity": rand.Intn(3) + 1},
		},
	}
	if !post("/orders", cart, &order) {
		return
	}
	path := "/orders/" + order.ID

	steps := []struct {
		action string
		body   any
	}{
		{"delivery-info", map[string]any{"actor_id": "requester", "delivery_fee": "4.99"}},
		{"payment", map[string]any{"payment_method_id": "card"}},
		{"submit", map[string]any{"actor_id": "requester"}},
	}
	for _, s := range steps {
		if !post(path+"/"+s.action, s.body, nil) {
			return
		}
	}

	switch rand.Intn(4) {
	case 0:
		post(path+"/reject", map[string]any{"manager_id": "manager", "reason_code": "PRICE_ERROR"}, nil)
	case 1:
		post(path+"/cancel", map[string]any{"actor_id": "requester"}, nil)
	default:
		if post(path+"/approve", map[string]any{"manager_id": "manager"}, nil) {
			post(path+"/ship", map[string]any{"actor_id": "warehouse"}, nil)
			post(path+"/deliver", map[string]any{"actor_id": "carrier"}, nil)
		}
	}
}

func post(path string, body, out any) bool {
	data, _ := json.Marshal(body)
	resp, err := http.Post(baseURL+path, "application/json", bytes.NewReader(data))
	if err != nil {
		fmt.Println("Ошибка запроса:", err)
		return false
	}
	defer resp.Body.Close()

	fmt.Println("POST", path, "->", resp.Status)
	if resp.StatusCode >= 300 {
		return false
	}
	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out) == nil
	}
	return true
}
