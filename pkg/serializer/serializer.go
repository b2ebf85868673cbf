package serializer

import "context"

// Serializer writes a value to some destination.
type Serializer interface {
	Serialize(ctx context.Context, data any) error
}

// Closer releases resources held by a Serializer or Deserializer.
type Closer interface {
	Close() error
}

// Deserializer decodes a document into v.
type Deserializer interface {
	Deserialize(v any) error
}
