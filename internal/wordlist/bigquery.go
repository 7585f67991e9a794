package wordlist

import (
	"context"
	"fmt"

	"cloud.google.com/go/bigquery"
	"google.golang.org/api/iterator"
)

// BigQuerySource reads the "word" column of a BigQuery table, in alphabetical order.
type BigQuerySource struct {
	Client *bigquery.Client

	// Table is a "dataset.table" name in the client's project.
	Table string

	// Location of the dataset. Defaults to "US".
	Location string
}

func bigQuerySQL(project, table string) (string, error) {
	if err := checkTable(project); err != nil {
		return "", err
	}
	if err := checkTable(table); err != nil {
		return "", err
	}
	return fmt.Sprintf("SELECT word FROM `%s.%s` ORDER BY word", project, table), nil
}

func (s BigQuerySource) Words(ctx context.Context) ([]string, error) {
	query, err := bigQuerySQL(s.Client.Project(), s.Table)
	if err != nil {
		return nil, err
	}

	q := s.Client.Query(query)
	q.Location = s.Location
	if q.Location == "" {
		q.Location = "US"
	}

	job, err := q.Run(ctx)
	if err != nil {
		return nil, fmt.Errorf("q.Run: %w", err)
	}
	status, err := job.Wait(ctx)
	if err != nil {
		return nil, fmt.Errorf("job.Wait: %w", err)
	}
	if err := status.Err(); err != nil {
		return nil, fmt.Errorf("status.Err: %w", err)
	}
	it, err := job.Read(ctx)
	if err != nil {
		return nil, fmt.Errorf("job.Read: %w", err)
	}

	var words []string
	for {
		var row []bigquery.Value
		err := it.Next(&row)
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("it.Next: %w", err)
		}

		word, ok := row[0].(string)
		if !ok {
			return nil, fmt.Errorf("row[0] is not a string: %v", row[0])
		}
		words = append(words, word)
	}
	return words, nil
}
