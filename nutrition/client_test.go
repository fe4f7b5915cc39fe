package nutrition

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Karthikeyagundu12/Nutrikart/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientSearchMenuItems(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/food/menuItems/search", r.URL.Path)
		assert.Equal(t, "paneer tikka", r.URL.Query().Get("query"))
		assert.Equal(t, "test-key", r.URL.Query().Get("apiKey"))
		w.Write([]byte(`{"menuItems":[{"id":7,"title":"Paneer Tikka","image":"pt.jpg"}],"totalMenuItems":1}`))
	}))
	defer srv.Close()

	client := NewClientWithBaseURL("test-key", srv.URL)
	res, err := client.SearchMenuItems(context.Background(), "paneer tikka", 1)
	require.NoError(t, err)
	require.Len(t, res.MenuItems, 1)
	assert.Equal(t, int64(7), res.MenuItems[0].ID)
	assert.Equal(t, "Paneer Tikka", res.MenuItems[0].Title)
}

func TestClientGetMenuItem(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/food/menuItems/7", r.URL.Path)
		w.Write([]byte(`{"id":7,"title":"Paneer Tikka","nutrition":{"nutrients":[{"name":"Calories","amount":270.3,"unit":"kcal"}]}}`))
	}))
	defer srv.Close()

	client := NewClientWithBaseURL("test-key", srv.URL)
	detail, err := client.GetMenuItem(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, detail.Nutrition.Nutrients, 1)
	assert.Equal(t, "Calories", detail.Nutrition.Nutrients[0].Name)
}

func TestClientNon200IsRemoteLookupError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusPaymentRequired) // quota exhausted
	}))
	defer srv.Close()

	client := NewClientWithBaseURL("test-key", srv.URL)
	_, err := client.GetMenuItem(context.Background(), 7)
	require.Error(t, err)
	assert.Equal(t, apperr.RemoteLookup, apperr.KindOf(err))
}

func TestClientMalformedBodyIsRemoteLookupError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer srv.Close()

	client := NewClientWithBaseURL("test-key", srv.URL)
	_, err := client.SearchMenuItems(context.Background(), "x", 1)
	require.Error(t, err)
	assert.Equal(t, apperr.RemoteLookup, apperr.KindOf(err))
}

func TestClientUnreachableIsRemoteLookupError(t *testing.T) {
	client := NewClientWithBaseURL("test-key", "http://127.0.0.1:1")
	_, err := client.GetMenuItem(context.Background(), 7)
	require.Error(t, err)
	assert.Equal(t, apperr.RemoteLookup, apperr.KindOf(err))
}
