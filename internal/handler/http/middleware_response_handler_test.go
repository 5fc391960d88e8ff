// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponseWriter_Status(t *testing.T) {
	t.Run("default", func(t *testing.T) {
		w := &responseWriter{ResponseWriter: httptest.NewRecorder()}
		assert.Equal(t, http.StatusOK, w.Status())
	})

	t.Run("explicit", func(t *testing.T) {
		rec := httptest.NewRecorder()
		w := &responseWriter{ResponseWriter: rec}

		w.WriteHeader(http.StatusTeapot)
		assert.Equal(t, http.StatusTeapot, w.Status())
		assert.Equal(t, http.StatusTeapot, rec.Code)
	})

	t.Run("second WriteHeader is ignored", func(t *testing.T) {
		rec := httptest.NewRecorder()
		w := &responseWriter{ResponseWriter: rec}

		w.WriteHeader(http.StatusCreated)
		w.WriteHeader(http.StatusInternalServerError)
		assert.Equal(t, http.StatusCreated, w.Status())
		assert.Equal(t, http.StatusCreated, rec.Code)
	})
}

func TestResponseWriter_Write(t *testing.T) {
	rec := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rec}

	n, err := w.Write([]byte("hello"))
	require.NoError(t, err)
	assert.Equal(t, 5, n)

	_, err = w.Write([]byte(" world"))
	require.NoError(t, err)

	assert.Equal(t, 11, w.size)
	assert.Equal(t, http.StatusOK, w.Status())
	assert.Equal(t, "hello world", rec.Body.String())
}

func TestResponseWriter_Unwrap(t *testing.T) {
	rec := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rec}

	assert.Same(t, rec, w.Unwrap())
	require.NoError(t, http.NewResponseController(w).Flush())
	assert.True(t, rec.Flushed)
}
