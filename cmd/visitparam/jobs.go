package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/arloliu/visitparam"
	"github.com/arloliu/visitparam/column"
	"gopkg.in/yaml.v3"
)

// Job is one extraction: a key and the kind of value to read. The empty key
// is valid and matches `"":`.
type Job struct {
	Key  string
	Kind visitparam.Kind
}

// jobFile lists the extractions printed side by side as tab-separated columns.
type jobFile struct {
	Jobs []jobEntry `yaml:"jobs"`
}

// jobEntry keeps the key as a pointer so a missing key differs from `key: ""`.
type jobEntry struct {
	Key  *string `yaml:"key"`
	Kind string  `yaml:"kind"`
}

// ParseJobs reads and validates a YAML job file.
func ParseJobs(path string) ([]Job, error) {
	data, err := os.ReadFile(path) //nolint:gosec // user supplied job file
	if err != nil {
		return nil, fmt.Errorf("failed to read job file: %w", err)
	}

	return ParseJobsBytes(data)
}

// ParseJobsBytes parses and validates a YAML job file.
func ParseJobsBytes(data []byte) ([]Job, error) {
	var file jobFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse job file: %w", err)
	}
	if len(file.Jobs) == 0 {
		return nil, errors.New("job file lists no jobs")
	}

	jobs := make([]Job, len(file.Jobs))
	for i, entry := range file.Jobs {
		job, err := newJob(entry.Key, entry.Kind)
		if err != nil {
			return nil, fmt.Errorf("job %d: %w", i, err)
		}
		jobs[i] = job
	}

	return jobs, nil
}

// newJob validates one extraction. A nil key means none was given.
func newJob(key *string, kindName string) (Job, error) {
	if key == nil {
		return Job{}, errors.New("key is required")
	}
	kind, err := visitparam.ParseKind(kindName)
	if err != nil {
		return Job{}, err
	}

	return Job{Key: *key, Kind: kind}, nil
}

var tsvEscaper = strings.NewReplacer(`\`, `\\`, "\t", `\t`, "\n", `\n`, "\r", `\r`)

// runJobs extracts every job from col and writes one line per row, one
// tab-separated field per job.
func runJobs(engine *visitparam.Engine, col *column.Strings, jobs []Job, w io.Writer) error {
	results := make([]*visitparam.Result, len(jobs))
	for i, job := range jobs {
		res, err := engine.Extract(job.Kind, visitparam.Column(col), visitparam.Const(job.Key))
		if err != nil {
			return fmt.Errorf("extract %q as %s: %w", job.Key, job.Kind, err)
		}
		results[i] = res
	}

	bw := bufio.NewWriter(w)
	for row := 0; row < col.Len(); row++ {
		for i, res := range results {
			if i > 0 {
				_ = bw.WriteByte('\t')
			}
			field := res.Format(row)
			if res.Kind.IsString() {
				field = tsvEscaper.Replace(field)
			}
			_, _ = bw.WriteString(field)
		}
		_ = bw.WriteByte('\n')
	}

	return bw.Flush()
}
