// Package logtail reads the trailing byte window of a log file.
//
// # Overview
//
// A refresh never scans a whole log. ReadWindow stats the file, seeks to the
// start of the last limit bytes and reads exactly the bytes that existed at
// stat time. Lines are returned in on-disk order; callers decide how to filter
// and order them.
//
// # Window Arithmetic
//
// For a file of size L and a cap C:
//
//	L <= C  start = 0
//	L >  C  start = L - C
//
// WindowStart exposes this rule on its own so it can be checked without a
// file.
//
// # Decoding
//
// Bytes are decoded as UTF-8 through a golang.org/x/text transformer that
// drops every byte which is not part of a valid sequence. The seek happens on
// raw bytes before decoding, so a multi-byte character cut by the window start
// loses its leading bytes and the first line may look garbled. That line is
// otherwise handled like any other.
//
// Example usage:
//
//	res, err := logtail.ReadWindow("/var/log/app.log", 2<<20)
//	if err != nil {
//		log.Printf("read log: %v", err)
//	}
//	for _, line := range res.Lines {
//		fmt.Println(line)
//	}
//
// # Line Handling
//
//   - Lines are split on '\n'; a trailing '\r' is removed with the rest of the
//     trailing whitespace
//   - Leading indentation is preserved
//   - Empty lines are returned as empty strings
//
// # Error Handling
//
// ReadWindow wraps every failure with a short prefix ("open log", "stat log",
// "seek log", "read log"). A missing file surfaces as an error matching
// os.ErrNotExist; deciding whether that is fatal is the caller's job.
//
// # Design Rationale
//
// The package holds no state and never watches files. Each call is a
// point-in-time snapshot and the file handle is closed before returning.
package logtail
