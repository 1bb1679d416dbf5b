package adbhttpx

// RequestURI is a composed request target, split into the path and the
// optional query segment.
type RequestURI struct {
	Pathname string
	Search   string
}

func (u RequestURI) String() string {
	return u.Pathname + u.Search
}

// BuildRequestURI composes the request target from a descriptor and
// the database-scoped path prefix.  A request marked absolute bypasses
// both the prefix and the descriptor's own base path.
func BuildRequestURI(req *Request, databasePrefix string) (RequestURI, error) {
	var uri RequestURI
	if req.AbsolutePath {
		uri.Pathname = req.Path
	} else {
		uri.Pathname = databasePrefix + req.BasePath + req.Path
	}

	if req.Query != nil {
		search, err := req.Query.EncodeQuery()
		if err != nil {
			return RequestURI{}, err
		}

		if search != "" {
			uri.Search = "?" + search
		}
	}

	return uri, nil
}
