package main

import (
	"context"
	"fmt"
	"io"

	"github.com/pkg/errors"

	"github.com/zeebo/md5/internal/check"
	"github.com/zeebo/md5/internal/log"
	"github.com/zeebo/md5/internal/source"
)

type checkStats struct {
	mismatched int
	unreadable int
	malformed  int
}

func checkLists(ctx context.Context, lists []string, stdin io.Reader, stdout io.Writer, opts source.Options) int {
	var stats checkStats
	code := exitOK

	for _, list := range lists {
		if err := checkList(ctx, list, stdin, stdout, opts, &stats); err != nil {
			log.Errorf("%s: %v", list, err)
			code = exitFail
		}
		if ctx.Err() != nil {
			break
		}
	}

	if stats.malformed > 0 {
		log.Warnf("%d line(s) improperly formatted", stats.malformed)
	}
	if stats.unreadable > 0 {
		log.Warnf("%d listed file(s) could not be read", stats.unreadable)
	}
	if stats.mismatched > 0 {
		log.Warnf("%d computed checksum(s) did NOT match", stats.mismatched)
	}

	if stats.mismatched+stats.unreadable+stats.malformed > 0 {
		code = exitFail
	}
	return code
}

func checkList(ctx context.Context, list string, stdin io.Reader, stdout io.Writer,
	opts source.Options, stats *checkStats) error {

	// the list itself is always read as plain text
	rc, err := source.Open(ctx, list, stdin, source.Options{})
	if err != nil {
		return err
	}
	defer func() { _ = rc.Close() }()

	entries := 0
	cr := check.NewReader(rc)
	for cr.Next() {
		entries++
		entry := cr.Entry()

		res, err := hashFile(ctx, entry.Name, stdin, opts)
		switch {
		case err != nil:
			log.Debugf("%s:%d: %s: %v", list, entry.Line, entry.Name, err)
			fmt.Fprintf(stdout, "%s: FAILED open or read\n", entry.Name)
			stats.unreadable++
		case res.Digest != entry.Digest:
			fmt.Fprintf(stdout, "%s: FAILED\n", entry.Name)
			stats.mismatched++
		default:
			fmt.Fprintf(stdout, "%s: OK\n", entry.Name)
		}
	}

	for _, line := range cr.Malformed() {
		log.Debugf("%s:%d: improperly formatted MD5 checksum line", list, line)
	}
	stats.malformed += len(cr.Malformed())

	if err := cr.Err(); err != nil {
		return err
	}
	if entries == 0 {
		return errors.New("no properly formatted MD5 checksum lines found")
	}
	return nil
}
