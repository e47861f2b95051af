package integration

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

// postJSONNoHelper is safe to call from worker goroutines, where require
// must not be used.
func postJSONNoHelper(url, body string) (*http.Response, map[string]any) {
	resp, err := http.Post(url, "application/json", strings.NewReader(body))
	if err != nil {
		return nil, nil
	}
	defer resp.Body.Close()

	var decoded map[string]any
	_ = json.NewDecoder(resp.Body).Decode(&decoded)
	return resp, decoded
}

func TestConcurrentDeposits(t *testing.T) {
	srv := newTestServer(t, 1000)
	number := registerWithAccount(t, srv, "66666666666", "checking")

	const workers = 50

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			postJSONNoHelper(
				srv.URL+"/api/v1/deposits",
				fmt.Sprintf(`{"account_number":%d,"amount":"1"}`, number),
			)
		}()
	}
	wg.Wait()

	_, stmt := getJSON(t, srv.URL+fmt.Sprintf("/api/v1/accounts/%d/statement", number))
	require.Equal(t, "50", stmt["balance"])
	records, ok := stmt["records"].([]any)
	require.True(t, ok)
	require.Len(t, records, workers)
}

func TestConcurrentAccountOpens(t *testing.T) {
	srv := newTestServer(t, 0)

	resp, _ := postJSON(t, srv.URL+"/api/v1/clients", `{"name":"Carla","tax_id":"77777777777"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	const workers = 20

	numbers := make(chan int, workers)
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			resp, account := postJSONNoHelper(srv.URL+"/api/v1/accounts", `{"tax_id":"77777777777","kind":"savings"}`)
			if resp != nil && resp.StatusCode == http.StatusCreated {
				numbers <- int(account["number"].(float64))
			}
		}()
	}
	wg.Wait()
	close(numbers)

	seen := make(map[int]bool)
	for n := range numbers {
		require.False(t, seen[n], "account number %d assigned twice", n)
		seen[n] = true
	}
	require.Len(t, seen, workers)
}
