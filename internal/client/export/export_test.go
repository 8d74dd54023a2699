package export

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/standup/internal/client/client"
	"github.com/dmitrijs2005/standup/internal/models"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample() []models.Entry {
	return []models.Entry{
		{ID: "3", Text: `Said "ship it", then shipped`, Date: time.Date(2024, 3, 2, 8, 0, 0, 0, time.UTC),
			Tags: []string{"release", "q1"}, Projects: []string{"api"}},
		{ID: "2", Text: "line one\nline two", Date: time.Date(2024, 3, 1, 22, 0, 0, 0, time.UTC),
			Tags: []string{}, Projects: []string{}},
		{ID: "1", Text: "Fixed login", Date: time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
			Tags: []string{"bug"}, Projects: []string{"web", "auth"}},
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, sample()[:1], time.UTC))

	want := "Date,Entry,Tags,Projects\n" +
		`2024-03-02T08:00:00Z,"Said ""ship it"", then shipped","release, q1",api` + "\n"
	assert.Equal(t, want, buf.String())
}

func TestCSVRoundTrip(t *testing.T) {
	in := sample()
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, in, time.UTC))

	out, err := ReadCSV(&buf)
	require.NoError(t, err)

	for i := range in {
		in[i].ID = ""
	}
	if diff := cmp.Diff(in, out); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestCSVRoundTrip_LabelsWithCommas(t *testing.T) {
	text, tags, _ := models.ParseQuickEntry("triaged #a,b #q\"1")
	in := []models.Entry{{
		Text:     text,
		Date:     time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
		Tags:     tags,
		Projects: []string{"web"},
	}}
	require.Equal(t, []string{"a,b", `q"1`}, in[0].Tags)

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, in, time.UTC))
	out, err := ReadCSV(&buf)
	require.NoError(t, err)
	if diff := cmp.Diff(in, out); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestReadCSV_Errors(t *testing.T) {
	_, err := ReadCSV(strings.NewReader(""))
	assert.Error(t, err)

	_, err = ReadCSV(strings.NewReader("When,Entry,Tags,Projects\n"))
	assert.ErrorContains(t, err, "unexpected column 1")

	_, err = ReadCSV(strings.NewReader("Date,Entry,Tags,Projects\nyesterday,x,,\n"))
	assert.ErrorContains(t, err, "line 2")

	_, err = ReadCSV(strings.NewReader("Date,Entry,Tags,Projects\n2024-03-02T08:00:00Z,x\n"))
	assert.Error(t, err)

	_, err = ReadCSV(strings.NewReader("Date,Entry,Tags,Projects\n2024-03-02T08:00:00Z,x,\"\"\"a\",\n"))
	assert.ErrorContains(t, err, "line 2: tags")
}

func TestWriteDocument(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteDocument(&buf, sample(), time.UTC))

	want := `# StandUp+ Entries Export

## Saturday, March 2, 2024

**8:00 AM**  
Said "ship it", then shipped

#release #q1 @api

## Friday, March 1, 2024

**10:00 PM**  
line one
line two

**10:00 AM**  
Fixed login

#bug @web @auth
`
	assert.Equal(t, want, buf.String())
}

func TestWriteDocument_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteDocument(&buf, nil, time.UTC))
	assert.Equal(t, "# StandUp+ Entries Export\n", buf.String())
}

func TestFileName(t *testing.T) {
	now := time.Date(2024, 3, 2, 8, 0, 0, 0, time.UTC)
	assert.Equal(t, "standup-entries-2024-03-02.csv", FileName(FormatCSV, now))
	assert.Equal(t, "text/csv", ContentType(FormatCSV))
	assert.Contains(t, ContentType(FormatMarkdown), "markdown")
}

type fakePresigner struct {
	urls     *client.ExportURLs
	err      error
	userID   string
	fileName string
}

func (f *fakePresigner) PresignExport(_ context.Context, userID, fileName string) (*client.ExportURLs, error) {
	f.userID, f.fileName = userID, fileName
	return f.urls, f.err
}

func TestUploader_Upload(t *testing.T) {
	var got []byte
	var gotType string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		gotType = r.Header.Get("Content-Type")
		got, _ = io.ReadAll(r.Body)
	}))
	defer srv.Close()

	p := &fakePresigner{urls: &client.ExportURLs{Key: "k", UploadURL: srv.URL + "/put", DownloadURL: "https://dl/x"}}
	link, err := NewUploader(p, srv.Client()).Upload(context.Background(), "u1", "e.csv", "text/csv", []byte("a,b"))
	require.NoError(t, err)
	assert.Equal(t, "https://dl/x", link)
	assert.Equal(t, "u1", p.userID)
	assert.Equal(t, "e.csv", p.fileName)
	assert.Equal(t, "text/csv", gotType)
	assert.Equal(t, "a,b", string(got))
}

func TestUploader_Failures(t *testing.T) {
	_, err := NewUploader(&fakePresigner{err: client.ErrUnauthorized}, nil).
		Upload(context.Background(), "u1", "e.csv", "text/csv", nil)
	assert.ErrorIs(t, err, client.ErrUnauthorized)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "denied", http.StatusForbidden)
	}))
	defer srv.Close()
	p := &fakePresigner{urls: &client.ExportURLs{UploadURL: srv.URL}}
	_, err = NewUploader(p, srv.Client()).Upload(context.Background(), "u1", "e.csv", "", nil)
	require.Error(t, err)
	assert.False(t, errors.Is(err, client.ErrUnauthorized))
	assert.Contains(t, err.Error(), "403")
}
