package errorlog

// Entry is one failed request as stored in the "errors" collection.
// Field names match the documents earlier versions of the store wrote.
type Entry struct {
	Time       int64  `bson:"time" json:"time"`
	IPAddress  string `bson:"IP address" json:"IP address"`
	URL        string `bson:"URL" json:"URL"`
	StatusCode int    `bson:"status code" json:"status code"`
}

// IsError reports whether a response status gets logged.
func IsError(status int) bool {
	return status >= 400 && status < 600
}
