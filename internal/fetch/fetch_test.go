// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package fetch

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tbhavar/gst-notifications-archive/pkg/types"
)

// buildPDF assembles a minimal one-page PDF showing the given text lines,
// computing xref offsets as it writes so the file is structurally valid.
func buildPDF(lines ...string) []byte {
	var content strings.Builder
	content.WriteString("BT /F1 12 Tf 72 720 Td")
	for i, line := range lines {
		if i > 0 {
			content.WriteString(" 0 -20 Td")
		}
		fmt.Fprintf(&content, " (%s) Tj", line)
	}
	content.WriteString(" ET")

	objects := []string{
		"<< /Type /Catalog /Pages 2 0 R >>",
		"<< /Type /Pages /Kids [3 0 R] /Count 1 >>",
		"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] " +
			"/Resources << /Font << /F1 4 0 R >> >> /Contents 5 0 R >>",
		"<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica >>",
		fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", content.Len(), content.String()),
	}

	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")
	offsets := make([]int, len(objects))
	for i, obj := range objects {
		offsets[i] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", i+1, obj)
	}
	xrefOffset := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", len(objects)+1)
	buf.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n",
		len(objects)+1, xrefOffset)
	return buf.Bytes()
}

func TestDownload(t *testing.T) {
	pdfData := buildPDF("NOTIFICATION TEXT")
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/notification.pdf" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/pdf")
		w.Write(pdfData)
	}))
	defer ts.Close()

	cfg := types.HTTPConfig{UserAgent: "gst-archive/test"}

	data, err := Download(context.Background(), ts.Client(), ts.URL+"/notification.pdf", cfg)
	require.NoError(t, err)
	assert.Equal(t, pdfData, data)

	_, err = Download(context.Background(), ts.Client(), ts.URL+"/missing.pdf", cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP 404")
}

func TestFirstPageText(t *testing.T) {
	data := buildPDF("GOVERNMENT OF INDIA", "Seeks to amend notification No. 12/2024")

	text, err := FirstPageText(data)
	require.NoError(t, err)

	assert.Contains(t, text, "GOVERNMENT OF INDIA")
	assert.Contains(t, text, "Seeks to amend notification No. 12/2024")

	// Rows come back in reading order, top of the page first.
	header := strings.Index(text, "GOVERNMENT OF INDIA")
	body := strings.Index(text, "Seeks to amend")
	assert.Less(t, header, body)
}

func TestFirstPageText_NotAPDF(t *testing.T) {
	_, err := FirstPageText([]byte("<html>not a pdf</html>"))
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	require.NoError(t, Validate(buildPDF("NOTIFICATION TEXT")))

	err := Validate([]byte("<html>503 service unavailable</html>"))
	require.Error(t, err)
}
