package zaputils

import "go.uber.org/zap"

func Endpoint(key string, val string) zap.Field {
	return zap.String(key, val)
}

func DatabaseName(key string, val string) zap.Field {
	return zap.String(key, val)
}

func RequestID(key string, val string) zap.Field {
	return zap.String(key, val)
}
