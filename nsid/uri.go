package nsid

import "strings"

// RewriteURI rewrites the collection segment of an at:// record URI
// onto the target namespace. Record URIs have the shape
// at://authority/collection/rkey; anything else, including URIs with
// other schemes, missing segments, or a collection outside the mapping
// table, is returned unchanged. It never fails: callers treat
// rewriting as best effort and keep the original reference when
// nothing better exists.
func RewriteURI(uri string, target Namespace) string {
	rest, ok := strings.CutPrefix(uri, "at://")
	if !ok {
		return uri
	}

	parts := strings.Split(rest, "/")
	if len(parts) != 3 {
		return uri
	}

	authority, collection, rkey := parts[0], parts[1], parts[2]
	if authority == "" || collection == "" || rkey == "" {
		return uri
	}

	mapped := MapCollection(collection, target)
	if mapped == collection {
		return uri
	}

	return "at://" + authority + "/" + mapped + "/" + rkey
}
