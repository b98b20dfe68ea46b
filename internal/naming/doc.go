// Package naming derives destination folder names from categories and
// normalized, collision-free filenames for the rename pass.
//
// Functions:
//   - BucketName(Category) → folder name ("TXT", "DOT_C", "No Extension").
//   - Normalize(name) → trimmed name with spaces replaced by underscores.
//   - Candidate(name, n) → name, then stem_2.ext, stem_3.ext, …
//
// Types:
//   - Resolver: in-run claim table used when names must be reserved without
//     touching the filesystem (dry runs).
package naming
