// Package bq is the remote query client. The rest of the tool depends only
// on the narrow Runner contract: SQL text in, full result table out.
package bq

import (
	"context"
	"fmt"

	"cloud.google.com/go/bigquery"
	"google.golang.org/api/iterator"

	"github.com/alt-code/Research/src/table"
)

// Runner executes a SQL statement and returns the complete result set.
type Runner interface {
	Run(ctx context.Context, sql string) (*table.Table, error)
}

// Client runs statements on BigQuery. Credentials come from the SDK's
// default chain (GOOGLE_APPLICATION_CREDENTIALS etc.); this package does
// not handle auth itself.
type Client struct {
	bq       *bigquery.Client
	location string
}

var _ Runner = (*Client)(nil)

// NewClient connects to BigQuery for the given billing project. location is
// the job execution location hint (the SOTorrent dump lives in "US").
func NewClient(ctx context.Context, projectID, location string) (*Client, error) {
	c, err := bigquery.NewClient(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("create bigquery client: %w", err)
	}
	return &Client{bq: c, location: location}, nil
}

// Run starts the query, waits for it, and reads every row into memory.
// No paging contract is exposed; callers own the cost of what they ask for.
func (c *Client) Run(ctx context.Context, sql string) (*table.Table, error) {
	q := c.bq.Query(sql)
	q.Location = c.location

	it, err := q.Read(ctx)
	if err != nil {
		return nil, fmt.Errorf("run query: %w", err)
	}

	result := &table.Table{}
	for {
		var row []bigquery.Value
		err := it.Next(&row)
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read result row: %w", err)
		}
		cells := make([]any, len(row))
		for i, v := range row {
			cells[i] = v
		}
		result.Rows = append(result.Rows, cells)
	}

	// Schema is populated once iteration has started, including the
	// zero-row case after Done.
	for _, field := range it.Schema {
		result.Columns = append(result.Columns, field.Name)
	}
	return result, nil
}

// Close releases the underlying connection.
func (c *Client) Close() error {
	return c.bq.Close()
}
