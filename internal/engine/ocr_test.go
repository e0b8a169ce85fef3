package engine

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cardlens/internal/domain"
	"cardlens/internal/port"
)

const sampleTSV = "level\tpage_num\tblock_num\tpar_num\tline_num\tword_num\tleft\ttop\twidth\theight\tconf\ttext\n" +
	"1\t1\t0\t0\t0\t0\t0\t0\t100\t100\t-1\t\n" +
	"5\t1\t1\t1\t1\t1\t0\t0\t10\t10\t96\tTotal\n" +
	"5\t1\t1\t1\t1\t2\t12\t0\t10\t10\t92\tAmount\n" +
	"5\t1\t1\t1\t2\t1\t0\t12\t10\t10\t88\tDue\n"

func TestParseTSV(t *testing.T) {
	text, confSum, words := parseTSV(sampleTSV)

	assert.Equal(t, "Total Amount\nDue", text)
	assert.Equal(t, 3, words)
	assert.InDelta(t, 276.0, confSum, 1e-9)
}

func TestParseTSV_Empty(t *testing.T) {
	text, _, words := parseTSV("")
	assert.Empty(t, text)
	assert.Zero(t, words)
}

// tsvRunner fakes pdftoppm by creating page images and tesseract by
// returning canned TSV.
type tsvRunner struct {
	tsv string
}

func (r tsvRunner) Run(ctx context.Context, name string, args ...string) ([]byte, []byte, error) {
	switch name {
	case "pdftoppm":
		prefix := args[len(args)-1]
		if err := os.WriteFile(prefix+"-1.png", []byte("png"), 0o600); err != nil {
			return nil, nil, err
		}
		return nil, nil, nil
	case "tesseract":
		return []byte(r.tsv), nil, nil
	}
	return nil, nil, nil
}

func TestOCREngine_Extract(t *testing.T) {
	eng := NewOCREngine(DefaultOCRConfig(), tsvRunner{tsv: sampleTSV})

	att := eng.Extract(context.Background(), port.Document{Bytes: []byte("%PDF-"), Filename: "scan.pdf"})

	require.NoError(t, att.Err)
	assert.Equal(t, domain.EngineOCR, att.Engine)
	assert.Equal(t, "Total Amount\nDue", att.Text)
	assert.Equal(t, 1, att.Pages)
	assert.InDelta(t, 0.92, att.Quality, 1e-9) // mean of 96, 92, 88 over 100
}

func TestOCREngine_NoText(t *testing.T) {
	eng := NewOCREngine(DefaultOCRConfig(), tsvRunner{tsv: ""})

	att := eng.Extract(context.Background(), port.Document{Bytes: []byte("%PDF-")})
	assert.Error(t, att.Err)
}
