package main

import (
	"fmt"
	"math/rand"
	"net/http"
	"sync"
	"time"
)

const (
	baseURL    = "http://localhost:8080/stores/demo-store"
	fixedOrder = "a3f1c2d4-5e6f-4a7b-8c9d-0e1f2a3b4c5d"
)

func main() {
	for {
		var wg sync.WaitGroup
		for range rand.Intn(10) {
			wg.Add(1)
			go func() {
				defer wg.Done()
				doRequest()
			}()
		}
		wg.Wait()
		time.Sleep(20 * time.Millisecond)
	}
}

func doRequest() {
	var resp *http.Response
	var err error

	switch rand.Intn(4) {
	case 0:
		resp, err = http.Get(baseURL + "/catalog")
	case 1:
		resp, err = http.Post(fmt.Sprintf("%s/cart/item-%d", baseURL, rand.Intn(50)), "application/json", nil)
	case 2:
		resp, err = http.Get(baseURL + "/cart")
	default:
		resp, err = http.Get(baseURL + "/orders/" + fixedOrder)
	}

	if err != nil {
		fmt.Println("request failed:", err)
		return
	}
	fmt.Println(resp.Request.Method, resp.Request.URL.Path, "->", resp.Status)
	resp.Body.Close()
}
