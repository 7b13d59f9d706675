package utils

import (
	"fmt"
	"nodo360/config"
	"time"

	"github.com/go-resty/resty/v2"
)

// priceFeedResponse represents the response from the spot price API
type priceFeedResponse struct {
	Bitcoin struct {
		USD float64 `json:"usd"`
	} `json:"bitcoin"`
}

// GetBTCPrice fetches the current BTC spot price in USD for the dashboard ticker
func GetBTCPrice() (float64, error) {
	client := resty.New().SetTimeout(10 * time.Second)

	var result priceFeedResponse
	resp, err := client.R().
		SetQueryParams(map[string]string{
			"ids":           "bitcoin",
			"vs_currencies": "usd",
		}).
		SetResult(&result).
		Get(config.AppConfig.PriceFeedURL)
	if err != nil {
		return 0, fmt.Errorf("failed to fetch BTC price: %v", err)
	}

	if resp.StatusCode() != 200 {
		return 0, fmt.Errorf("price feed error: %s", resp.Status())
	}

	return result.Bitcoin.USD, nil
}
