// Package seed imports and exports riddle collections as JSON arrays.
package seed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/charadas/charadas-api/internal/charada"
	"github.com/charadas/charadas-api/internal/charada/service"
)

// Entry is one element of an import file. An id field, if present, is ignored:
// imported riddles always receive fresh counter values.
type Entry struct {
	Pergunta string `json:"pergunta"`
	Resposta string `json:"resposta"`
}

type Report struct {
	Created []int64
	Skipped []string
}

// Import creates every valid entry through svc. Invalid entries are recorded
// in the report and skipped; a store error stops the import.
func Import(ctx context.Context, svc service.Service, r io.Reader) (*Report, error) {
	var entries []Entry
	if err := json.NewDecoder(r).Decode(&entries); err != nil {
		return nil, fmt.Errorf("decode import file: %w", err)
	}
	rep := &Report{}
	for i, e := range entries {
		c, err := svc.Create(ctx, e.Pergunta, e.Resposta)
		if errors.Is(err, service.ErrInvalid) {
			rep.Skipped = append(rep.Skipped, fmt.Sprintf("entry %d: %v", i, err))
			continue
		}
		if err != nil {
			return rep, fmt.Errorf("import entry %d: %w", i, err)
		}
		rep.Created = append(rep.Created, c.ID)
	}
	return rep, nil
}

// Export writes every stored riddle as an indented JSON array and returns the count.
func Export(ctx context.Context, svc service.Service, w io.Writer) (int, error) {
	list, err := svc.List(ctx)
	if err != nil {
		return 0, err
	}
	if list == nil {
		list = []*charada.Charada{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(list); err != nil {
		return 0, fmt.Errorf("encode export: %w", err)
	}
	return len(list), nil
}
