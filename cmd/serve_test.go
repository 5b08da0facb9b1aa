package cmd

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/featdiibs/simple-chord-transposer/logger"
	"github.com/featdiibs/simple-chord-transposer/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func jsonBody(t *testing.T, v any) io.Reader {
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewReader(data)
}

func do(t *testing.T, req *http.Request) *http.Response {
	w := httptest.NewRecorder()
	NewRouter([]string{"*"}).ServeHTTP(w, req)
	return w.Result()
}

func decode[A any](t *testing.T, resp *http.Response) A {
	var res A
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&res))
	return res
}

func TestHandleTranspose(t *testing.T) {
	body := jsonBody(t, model.TransposeRequestBody{Text: "C G Am F\nla la la", Shift: 2})
	resp := do(t, httptest.NewRequest(http.MethodPost, "/transpose", body))

	assert := assert.New(t)
	assert.Equal(http.StatusOK, resp.StatusCode)
	assert.NotEmpty(resp.Header.Get(requestIDHeader))

	res := decode[model.TransposeResponse](t, resp)
	assert.Equal("D A Bm G\nla la la", res.Plain)
	assert.Contains(res.Annotated, `<span class="chord">Bm</span>`)
	assert.Equal(2, res.Shift)
}

func TestHandleTransposeFromTo(t *testing.T) {
	body := jsonBody(t, model.TransposeRequestBody{Text: "G D", From: "G", To: "F", Flats: true})
	resp := do(t, httptest.NewRequest(http.MethodPost, "/transpose", body))
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	res := decode[model.TransposeResponse](t, resp)
	assert.Equal(t, "F C", res.Plain)
	assert.Equal(t, 10, res.Shift)
}

func TestHandleTransposeNegativeShiftNormalized(t *testing.T) {
	body := jsonBody(t, model.TransposeRequestBody{Text: "C", Shift: -1})
	res := decode[model.TransposeResponse](t, do(t, httptest.NewRequest(http.MethodPost, "/transpose", body)))
	assert.Equal(t, "B", res.Plain)
	assert.Equal(t, 11, res.Shift)
}

func TestHandleTransposeBadRequests(t *testing.T) {
	for _, tc := range []struct {
		name string
		body io.Reader
	}{
		{"malformed", bytes.NewReader([]byte("{"))},
		{"unknown key", jsonBody(t, model.TransposeRequestBody{Text: "C", From: "C", To: "H"})},
		{"missing to", jsonBody(t, model.TransposeRequestBody{Text: "C", From: "C"})},
	} {
		t.Run(tc.name, func(t *testing.T) {
			resp := do(t, httptest.NewRequest(http.MethodPost, "/transpose", tc.body))
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
			res := decode[model.ErrorResponse](t, resp)
			assert.NotEmpty(t, res.Error)
		})
	}
}

func TestHandleKey(t *testing.T) {
	body := jsonBody(t, model.KeyRequestBody{Text: "C G C\nC G C"})
	res := decode[model.KeyResponse](t, do(t, httptest.NewRequest(http.MethodPost, "/key", body)))
	require.NotNil(t, res.Key)
	assert.Equal(t, "C", *res.Key)

	body = jsonBody(t, model.KeyRequestBody{Text: "nothing here"})
	resp := do(t, httptest.NewRequest(http.MethodPost, "/key", body))
	data, _ := io.ReadAll(resp.Body)
	assert.JSONEq(t, `{"key": null}`, string(data))
}

func TestHandleKeys(t *testing.T) {
	res := decode[model.KeysResponse](t, do(t, httptest.NewRequest(http.MethodGet, "/keys", nil)))
	assert.Len(t, res.Keys, 17)
	assert.Equal(t, "C", res.Keys[0])
}

func TestHandleChord(t *testing.T) {
	resp := do(t, httptest.NewRequest(http.MethodGet, "/chord/D%2FF%23?shift=1", nil))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	res := decode[model.ChordResponse](t, resp)
	assert.Equal(t, model.ChordResponse{
		Token:      "D/F#",
		Root:       "D",
		Bass:       "F#",
		Transposed: "D#/G",
	}, res)

	resp = do(t, httptest.NewRequest(http.MethodGet, "/chord/Am7?shift=2&flats=true", nil))
	res = decode[model.ChordResponse](t, resp)
	assert.Equal(t, "Bm7", res.Transposed)
	assert.Equal(t, "m7", res.Suffix)

	resp = do(t, httptest.NewRequest(http.MethodGet, "/chord/H7", nil))
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = do(t, httptest.NewRequest(http.MethodGet, "/chord/C?shift=up", nil))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestRequestIDIsEchoed(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/keys", nil)
	req.Header.Set(requestIDHeader, "abc-123")
	resp := do(t, req)
	assert.Equal(t, "abc-123", resp.Header.Get(requestIDHeader))
}

func TestCORS(t *testing.T) {
	req := httptest.NewRequest(http.MethodOptions, "/transpose", nil)
	req.Header.Set("Origin", "http://example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	resp := do(t, req)
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
}

func TestWriteJSONLogsEncodeFailure(t *testing.T) {
	var buf bytes.Buffer
	prev := log
	log = logger.New(zapcore.AddSync(&buf), "warn")
	t.Cleanup(func() { log = prev })

	w := httptest.NewRecorder()
	writeJSON(w, http.StatusOK, map[string]any{"bad": make(chan int)})

	assert := assert.New(t)
	assert.Equal(http.StatusOK, w.Code)
	assert.Contains(buf.String(), "failed to write response")
	assert.Contains(buf.String(), "chan int")
}
