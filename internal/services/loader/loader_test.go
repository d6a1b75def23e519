package loader_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/Houeta/shelf-watch/internal/models"
	"github.com/Houeta/shelf-watch/internal/services/loader"
	"github.com/Houeta/shelf-watch/test/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	summaryJSON = `{"run_id":"r1","time_utc":"2025-03-01T10:00:00+00:00","sites_ok":1,"sites_error":1,
		"totals":{"new":1,"price":1,"removed":0,"oos":0,"restock":0}}`
	sitesJSON = `[
		{"site_id":"shop-a","name":"Shop A","base_url":"https://a.test","status":"ok","error":"",
		 "currency_code":"USD","currency_symbol":"$",
		 "product_status":{"total":2,"in_stock":2,"oos":0},
		 "counts":{"new":1,"price":1,"removed":0,"oos":0,"restock":0},
		 "price_buckets_total":{"0-50":2},
		 "changes":[
			{"type":"PRICE","key":"k1","title":"Lamp","category":"Home","old_price":[30,30],"new_price":[25,25],"url":"https://a.test/lamp"},
			{"type":"NEW","key":"k2","title":"Rug","category":"Home","old_price":null,"new_price":[40,45]}
		 ],
		 "products_by_category":{"Home":[
			{"key":"k1","title":"Lamp","min_price":25,"max_price":25,"available":true,"url":"https://a.test/lamp"},
			{"key":"k2","title":"Rug","min_price":40,"max_price":45,"available":null}
		 ]},
		 "product_total":2},
		{"site_id":"shop-b","name":"Shop B","base_url":"https://b.test","status":"error","error":"timeout",
		 "changes":[],"counts":{"new":0,"removed":0,"price":0,"restock":0,"oos":0}}
	]`
	errorsJSON = `[{"site_id":"shop-b","name":"Shop B","error":"timeout"}]`
)

func newLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLoader_Load(t *testing.T) {
	src := mocks.NewSource(t)
	src.On("Fetch", mock.Anything, loader.SummaryDoc).Return([]byte(summaryJSON), nil).Once()
	src.On("Fetch", mock.Anything, loader.SitesDoc).Return([]byte(sitesJSON), nil).Once()
	src.On("Fetch", mock.Anything, loader.ErrorsDoc).Return([]byte(errorsJSON), nil).Once()

	snap, err := loader.New(newLogger(), src, time.Second).Load(t.Context())

	require.NoError(t, err)
	assert.Equal(t, 1, snap.Summary.SitesOK)
	require.Len(t, snap.Sites, 2)
	assert.Equal(t, "$", snap.Sites[0].CurrencySymbol)
	assert.Equal(t, "€", snap.Sites[1].CurrencySymbol, "defaults are filled at ingestion")
	assert.Equal(t, []models.SiteError{{SiteID: "shop-b", Name: "Shop B", Error: "timeout"}}, snap.Errors)
}

func TestLoader_MalformedProductPrice(t *testing.T) {
	sites := `[
		{"site_id":"a","status":"ok","products_by_category":{"Home":[
			{"key":"k1","title":"Lamp","min_price":"n/a","max_price":25},
			{"key":"k2","title":"Rug","min_price":40,"max_price":40}
		 ]},
		 "bestsellers":[{"key":"k1","title":"Lamp","min_price":{"amount":1},"max_price":null}],
		 "product_total":2},
		{"site_id":"b","status":"ok","products_by_category":{"Kitchen":[
			{"key":"k3","title":"Cup","min_price":5,"max_price":5}
		 ]},
		 "product_total":1}
	]`

	src := mocks.NewSource(t)
	src.On("Fetch", mock.Anything, loader.SummaryDoc).Return([]byte(summaryJSON), nil).Once()
	src.On("Fetch", mock.Anything, loader.SitesDoc).Return([]byte(sites), nil).Once()
	src.On("Fetch", mock.Anything, loader.ErrorsDoc).Return([]byte(`[]`), nil).Once()

	view, err := loader.New(newLogger(), src, time.Second).Dashboard(t.Context())
	require.NoError(t, err)
	require.Len(t, view.Sites, 2)

	siteA, ok := view.Site("a")
	require.True(t, ok)
	rows := siteA.Products.Sections[0].Rows
	require.Len(t, rows, 2)
	assert.Equal(t, "€25", rows[0].Price)
	assert.Equal(t, "€40", rows[1].Price)
	require.Len(t, siteA.Bestsellers.Rows, 1)
	assert.Empty(t, siteA.Bestsellers.Rows[0].Price)

	siteB, ok := view.Site("b")
	require.True(t, ok)
	assert.Equal(t, "€5", siteB.Products.Sections[0].Rows[0].Price)
}

func TestLoader_Dashboard(t *testing.T) {
	src := mocks.NewSource(t)
	src.On("Fetch", mock.Anything, loader.SummaryDoc).Return([]byte(summaryJSON), nil).Once()
	src.On("Fetch", mock.Anything, loader.SitesDoc).Return([]byte(sitesJSON), nil).Once()
	src.On("Fetch", mock.Anything, loader.ErrorsDoc).Return([]byte(`null`), nil).Once()

	view, err := loader.New(newLogger(), src, 0).Dashboard(t.Context())

	require.NoError(t, err)
	assert.Equal(t, "No errors.", view.ErrorsEmpty)

	site, ok := view.Site("shop-a")
	require.True(t, ok)
	require.Len(t, site.Products.Sections, 1)

	rows := site.Products.Sections[0].Rows
	require.NotNil(t, rows[0].Annotation)
	assert.Equal(t, "was $30", rows[0].Annotation.PriceNote)
	assert.Equal(t, "$40–$45", rows[1].Price)
	assert.True(t, rows[1].InStock)
	assert.Equal(t, "#", rows[1].URL)

	broken, ok := view.Site("shop-b")
	require.True(t, ok)
	assert.Equal(t, "timeout", broken.HeadNote)
}

func TestLoader_AnyFailureFailsTheWholeLoad(t *testing.T) {
	testCases := []struct {
		name    string
		failing string
		body    []byte
		err     error
		errMsg  string
	}{
		{name: "summary fetch fails", failing: loader.SummaryDoc, err: errors.New("boom"), errMsg: "failed to fetch summary.json"},
		{name: "sites fetch fails", failing: loader.SitesDoc, err: errors.New("boom"), errMsg: "failed to fetch sites.json"},
		{name: "errors document is malformed", failing: loader.ErrorsDoc, body: []byte(`{not json`), errMsg: "failed to decode errors.json"},
	}

	docs := map[string]string{
		loader.SummaryDoc: summaryJSON,
		loader.SitesDoc:   sitesJSON,
		loader.ErrorsDoc:  errorsJSON,
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			src := &mocks.Source{}
			for name, body := range docs {
				if name == tc.failing {
					src.On("Fetch", mock.Anything, name).Return(tc.body, tc.err).Maybe()
					continue
				}
				src.On("Fetch", mock.Anything, name).Return([]byte(body), nil).Maybe()
			}

			view, err := loader.New(newLogger(), src, 0).Dashboard(t.Context())

			assert.Nil(t, view)
			require.ErrorIs(t, err, loader.ErrLoad)
			require.ErrorContains(t, err, tc.errMsg)
		})
	}
}

type slowSource struct{}

func (slowSource) Fetch(ctx context.Context, _ string) ([]byte, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func TestLoader_Timeout(t *testing.T) {
	_, err := loader.New(newLogger(), slowSource{}, 10*time.Millisecond).Load(t.Context())

	require.ErrorIs(t, err, loader.ErrLoad)
	require.ErrorIs(t, err, context.DeadlineExceeded)
}
