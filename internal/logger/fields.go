package logger

import (
	"github.com/sirupsen/logrus"
)

// Detail is a piece of structured information attached to a log entry.
type Detail interface{ addTo(logrus.Fields) }

func Field(key string, value any) Detail {
	return field{Key: key, Value: value}
}

type field struct {
	Key   string
	Value any
}

func (f field) addTo(fs logrus.Fields) {
	if d, ok := f.Value.(Detail); ok {
		sub := logrus.Fields{}
		d.addTo(sub)
		fs[f.Key] = sub
		return
	}
	fs[f.Key] = f.Value
}

type Fields map[string]any

func (fields Fields) addTo(fs logrus.Fields) {
	for k, v := range fields {
		Field(k, v).addTo(fs)
	}
}

func ErrField(err error) Detail {
	if err == nil {
		return nullDetail{}
	}
	return Field("error", Fields{"message": err.Error()})
}

type nullDetail struct{}

func (nullDetail) addTo(logrus.Fields) {}
