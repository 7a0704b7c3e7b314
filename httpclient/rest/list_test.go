package rest

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kbukum/avatax/errors"
	"github.com/kbukum/avatax/httpclient"
)

func TestListOptionsParams(t *testing.T) {
	tests := []struct {
		name string
		opts ListOptions
		want string
	}{
		{"empty", ListOptions{}, ""},
		{"filter", ListOptions{Filter: "isActive eq true"}, "%24filter=isActive%20eq%20true"},
		{
			"all",
			ListOptions{Filter: "a eq 1", Include: "Details", Top: 10, Skip: 20, OrderBy: "name ASC"},
			"%24filter=a%20eq%201&%24include=Details&%24top=10&%24skip=20&%24orderBy=name%20ASC",
		},
		{"negative paging dropped", ListOptions{Top: -1, Skip: 0}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, httpclient.EncodeQuery(tt.opts.Params()))
		})
	}
}

// pagedHandler serves total records in pages of size, linking with a
// relative @nextLink.
func pagedHandler(t *testing.T, total, size int, calls *atomic.Int32) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		skip, _ := strconv.Atoi(r.URL.Query().Get("$skip"))
		page := map[string]any{"@recordsetCount": total}
		var values []company
		for i := skip; i < total && i < skip+size; i++ {
			values = append(values, company{ID: i + 1, Name: fmt.Sprintf("c%d", i+1)})
		}
		page["value"] = values
		if skip+size < total {
			page["@nextLink"] = fmt.Sprintf("/api/v2/companies?$top=%d&$skip=%d", size, skip+size)
		}
		require.NoError(t, json.NewEncoder(w).Encode(page))
	}
}

func TestListAndNext(t *testing.T) {
	var calls atomic.Int32
	c := newTestClient(t, pagedHandler(t, 3, 2, &calls))
	ctx := context.Background()

	page, err := List[company](ctx, c, "/api/v2/companies", ListOptions{Top: 2})
	require.NoError(t, err)
	assert.Equal(t, 3, page.RecordCount)
	assert.Len(t, page.Value, 2)
	assert.True(t, page.HasNext())

	page, err = Next(ctx, c, page)
	require.NoError(t, err)
	require.Len(t, page.Value, 1)
	assert.Equal(t, 3, page.Value[0].ID)
	assert.False(t, page.HasNext())

	page, err = Next(ctx, c, page)
	require.NoError(t, err)
	assert.Nil(t, page)
	assert.Equal(t, int32(2), calls.Load())
}

func TestNextFollowsAbsoluteLink(t *testing.T) {
	var hits atomic.Int32
	other := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		_, _ = w.Write([]byte(`{"@recordsetCount":1,"value":[{"id":9}]}`))
	})
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("unexpected request to primary host: %s", r.URL)
	})

	page := &FetchResult[company]{NextLink: other.HTTP().BaseURL() + "/api/v2/companies?$skip=1"}
	next, err := Next(context.Background(), c, page)
	require.NoError(t, err)
	require.Len(t, next.Value, 1)
	assert.Equal(t, 9, next.Value[0].ID)
	assert.Equal(t, int32(1), hits.Load())
}

func TestListAll(t *testing.T) {
	var calls atomic.Int32
	c := newTestClient(t, pagedHandler(t, 5, 2, &calls))

	all, err := ListAll[company](context.Background(), c, "/api/v2/companies", ListOptions{Top: 2})
	require.NoError(t, err)
	require.Len(t, all, 5)
	for i, co := range all {
		assert.Equal(t, i+1, co.ID)
	}
	assert.Equal(t, int32(3), calls.Load())
}

func TestListAllStopsOnRepeatedLink(t *testing.T) {
	var calls atomic.Int32
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		_, _ = w.Write([]byte(`{"@recordsetCount":10,"value":[{"id":1}],"@nextLink":"/api/v2/companies?$skip=1"}`))
	})

	all, err := ListAll[company](context.Background(), c, "/api/v2/companies", ListOptions{})
	require.NoError(t, err)
	assert.Len(t, all, 2)
	assert.Equal(t, int32(2), calls.Load())
}

func TestListWithConverterCarriesToNext(t *testing.T) {
	var calls atomic.Int32
	c := newTestClient(t, pagedHandler(t, 3, 2, &calls))
	names := func(raw json.RawMessage) (string, error) {
		var co company
		err := json.Unmarshal(raw, &co)
		return co.Name, err
	}

	page, err := ListWith[string](context.Background(), c, "/api/v2/companies", ListOptions{Top: 2}, names)
	require.NoError(t, err)
	assert.Equal(t, []string{"c1", "c2"}, page.Value)

	page, err = Next(context.Background(), c, page)
	require.NoError(t, err)
	assert.Equal(t, []string{"c3"}, page.Value)
}

func TestListErrors(t *testing.T) {
	t.Run("service error", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"error":{"code":"AuthenticationException","message":"Authentication failed."}}`))
		})
		_, err := ListAll[company](context.Background(), c, "/api/v2/companies", ListOptions{})
		require.Error(t, err)
		assert.True(t, IsAuth(err))
	})

	t.Run("not an envelope", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`[1,2,3]`))
		})
		_, err := List[company](context.Background(), c, "/api/v2/companies", ListOptions{})
		require.Error(t, err)
		assert.True(t, errors.IsParse(err))
	})
}
