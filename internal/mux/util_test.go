package mux

import (
	"bytes"
	"encoding/json"
	"io"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func assertDo(t *testing.T, req *http.Request, respObj interface{}, statusCode int) *http.Response {
	t.Helper()

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Error(err)
		return nil
	}
	defer resp.Body.Close()

	if statusCode != resp.StatusCode {
		b, _ := ioutil.ReadAll(resp.Body)
		t.Log(string(b))
		assert.Equal(t, statusCode, resp.StatusCode)
		return nil
	}

	if respObj != nil {
		if err := json.NewDecoder(resp.Body).Decode(respObj); err != nil {
			t.Error(err)
			return nil
		}
	}

	return resp
}

func assertGet(t *testing.T, ts *httptest.Server, path string, respObj interface{}, statusCode int) {
	t.Helper()

	req, err := http.NewRequest(http.MethodGet, ts.URL+path, nil)
	if err != nil {
		t.Error(err)
		return
	}

	assertDo(t, req, respObj, statusCode)
}

func assertPost(t *testing.T, ts *httptest.Server, path string, payload interface{}, respObj interface{}, statusCode int) {
	t.Helper()

	var body io.Reader
	switch val := payload.(type) {
	case string:
		body = strings.NewReader(val)
	default:
		b, err := json.Marshal(val)
		if err != nil {
			t.Error(err)
			return
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequest(http.MethodPost, ts.URL+path, body)
	if err != nil {
		t.Error(err)
		return
	}
	req.Header.Set("Content-Type", "application/json")

	assertDo(t, req, respObj, statusCode)
}

func Test_writeJSONError(t *testing.T) {
	a := assert.New(t)

	w := httptest.NewRecorder()
	writeJSONError(w, http.StatusBadRequest, assert.AnError)
	a.Equal(http.StatusBadRequest, w.Code)
	a.Equal("application/json", w.Header().Get("Content-Type"))
	a.JSONEq(`{"message":"assert.AnError general error for testing","statusCode":400}`, w.Body.String())

	w = httptest.NewRecorder()
	writeJSONError(w, http.StatusInternalServerError, assert.AnError)
	a.JSONEq(`{"message":"Internal Server Error","statusCode":500}`, w.Body.String())
}

func Test_decodeRequest(t *testing.T) {
	a := assert.New(t)

	var payload postRankPayload
	r := httptest.NewRequest(http.MethodPost, "/rank", strings.NewReader(`{"cards":"2c"}`))
	w := httptest.NewRecorder()
	a.False(decodeRequest(w, r, &payload))
	a.Equal(http.StatusUnsupportedMediaType, w.Code)

	r = httptest.NewRequest(http.MethodPost, "/rank", strings.NewReader(`{"cards":`))
	r.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	a.False(decodeRequest(w, r, &payload))
	a.Equal(http.StatusBadRequest, w.Code)

	r = httptest.NewRequest(http.MethodPost, "/rank", strings.NewReader(`{"cards":"2c"}`))
	r.Header.Set("Content-Type", "text/json")
	w = httptest.NewRecorder()
	a.True(decodeRequest(w, r, &payload))
	a.Equal("2c", payload.Cards)
}
