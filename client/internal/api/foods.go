package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/nutritrack/nutritrack-client/client/internal/types"
)

// SearchFoods queries the food catalogue. Only the Authorization header is
// set; the request carries no Content-Type. Any 2xx is a success.
func SearchFoods(ctx context.Context, httpClient types.HTTPClient, baseURL string, req types.SearchFoodsRequest, token string) ([]types.Food, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	u := SearchFoodsURL(baseURL, req)
	httpReq, err := newRequest(ctx, http.MethodGet, u, token, nil, false)
	if err != nil {
		return nil, err
	}
	var foods []types.Food
	if err := do(httpClient, httpReq, "search foods", is2xx, &foods); err != nil {
		return nil, err
	}
	return foods, nil
}

// SearchFoodsURL renders the search-food URL. Parameters keep the
// q, country, lang order and spaces encode as %20.
func SearchFoodsURL(baseURL string, req types.SearchFoodsRequest) string {
	country := req.Country
	if country == "" {
		country = types.DefaultCountry
	}
	lang := req.Lang
	if lang == "" {
		lang = types.DefaultLang
	}
	return fmt.Sprintf("%s/meals/search-food/?q=%s&country=%s&lang=%s",
		baseURL, escape(req.Query), escape(country), escape(lang))
}

func escape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
