package netx

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestUploadToPresignedURL(t *testing.T) {
	file := []byte("Date,Entry,Tags,Projects\n")

	t.Run("success 200 OK", func(t *testing.T) {
		var gotBody []byte
		var gotCT string
		var gotMethod string

		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotMethod = r.Method
			gotCT = r.Header.Get("Content-Type")
			body, _ := io.ReadAll(r.Body)
			_ = r.Body.Close()
			gotBody = body
			w.WriteHeader(http.StatusOK)
		}))
		defer ts.Close()

		err := UploadToPresignedURL(context.Background(), ts.Client(), ts.URL+"/exports/e.csv?X-Amz-Signature=abc", "text/csv", file)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if gotMethod != http.MethodPut {
			t.Fatalf("method = %q, want PUT", gotMethod)
		}
		if gotCT != "text/csv" {
			t.Fatalf("Content-Type = %q, want text/csv", gotCT)
		}
		if !bytes.Equal(gotBody, file) {
			t.Fatalf("body = %q, want %q", string(gotBody), string(file))
		}
	})

	t.Run("default content type", func(t *testing.T) {
		var gotCT string
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotCT = r.Header.Get("Content-Type")
		}))
		defer ts.Close()

		if err := UploadToPresignedURL(context.Background(), nil, ts.URL, "", file); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if gotCT != DefaultContentType {
			t.Fatalf("Content-Type = %q, want %q", gotCT, DefaultContentType)
		}
	})

	t.Run("non-200 -> error", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
			_, _ = w.Write([]byte("SignatureDoesNotMatch"))
		}))
		defer ts.Close()

		err := UploadToPresignedURL(context.Background(), ts.Client(), ts.URL, "text/csv", file)
		if err == nil {
			t.Fatal("expected error, got nil")
		}
		if !strings.Contains(err.Error(), "upload failed: 403") || !strings.Contains(err.Error(), "SignatureDoesNotMatch") {
			t.Fatalf("error = %q, want status and body", err.Error())
		}
	})

	t.Run("bad url -> error", func(t *testing.T) {
		if err := UploadToPresignedURL(context.Background(), nil, "://bad", "", file); err == nil {
			t.Fatal("expected error for malformed URL")
		}
	})
}
