package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestUploadFile_Multipart(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/upload" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("ParseMultipartForm: %v", err)
		}
		f, hdr, err := r.FormFile("avatar")
		if err != nil {
			t.Errorf("FormFile: %v", err)
		} else {
			defer func() { _ = f.Close() }()
			if hdr.Filename != "cat.png" {
				t.Errorf("filename = %q", hdr.Filename)
			}
		}
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"url":"/uploads/cat.png"}`))
	}))
	defer srv.Close()

	got, err := UploadFile(context.Background(), srv.Client(), srv.URL, "avatar", "/tmp/photos/cat.png", strings.NewReader("png-bytes"))
	if err != nil || got.URL != "/uploads/cat.png" {
		t.Fatalf("UploadFile unexpected: got=%+v err=%v", got, err)
	}
}

func TestUploadFile_DefaultFieldAndErrors(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("ParseMultipartForm: %v", err)
		}
		if _, _, err := r.FormFile("file"); err != nil {
			t.Errorf("expected default field name: %v", err)
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"url":"/uploads/x"}`))
	}))
	defer srv.Close()

	if _, err := UploadFile(context.Background(), srv.Client(), srv.URL, "", "x.jpg", strings.NewReader("x")); err != nil {
		t.Fatalf("UploadFile error: %v", err)
	}
	if _, err := UploadFile(context.Background(), srv.Client(), srv.URL, "file", "", strings.NewReader("x")); err == nil {
		t.Fatal("expected error for missing filename")
	}
}

func TestUploadFile_TooLarge(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusRequestEntityTooLarge)
		_, _ = w.Write([]byte(`{"message":"file too large"}`))
	}))
	defer srv.Close()
	if _, err := UploadFile(context.Background(), srv.Client(), srv.URL, "file", "big.mp4", strings.NewReader("....")); err == nil {
		t.Fatal("expected error for 413")
	}
}
