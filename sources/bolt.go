package sources

import (
	"bytes"
	"encoding/binary"
	"encoding/gob"
	"time"

	"github.com/boltdb/bolt"
	"github.com/pkg/errors"

	"github.com/adamluzsi/rdfstream/statement"
)

// Open opens the bolt database at path, creating it when missing.
func Open(path string) (*Store, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, errors.Wrapf(err, "opening bolt database %s", path)
	}
	return &Store{DB: db}, nil
}

// Store keeps node sequences in a bolt database, one bucket per sequence.
// Nodes are kept in insertion order.
type Store struct {
	DB *bolt.DB
}

// Close the database and release the file lock.
func (s *Store) Close() error {
	return s.DB.Close()
}

// Append stores the nodes at the end of the sequence held in bucket.
func (s *Store) Append(bucket string, nodes ...statement.Node) error {
	return s.DB.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists([]byte(bucket))
		if err != nil {
			return errors.Wrapf(err, "creating bucket %s", bucket)
		}
		for _, n := range nodes {
			seq, err := b.NextSequence()
			if err != nil {
				return errors.WithStack(err)
			}
			value, err := encode(n)
			if err != nil {
				return errors.Wrapf(err, "encoding %s", n)
			}
			if err := b.Put(uintToBytes(seq), value); err != nil {
				return errors.WithStack(err)
			}
		}
		return nil
	})
}

// Nodes opens a read transaction over bucket and returns its nodes as a sequence.
// The transaction is held until the sequence is closed,
// so the sequence must be closed before writing to the same Store from the same goroutine.
func (s *Store) Nodes(bucket string) (*BoltNodes, error) {
	tx, err := s.DB.Begin(false)
	if err != nil {
		return nil, errors.Wrap(err, "beginning read transaction")
	}
	b := tx.Bucket([]byte(bucket))
	if b == nil {
		_ = tx.Rollback()
		return nil, ErrBucketNotFound.F("%s", bucket)
	}
	c := b.Cursor()
	_, v := c.First()
	return &BoltNodes{tx: tx, cursor: c, value: v}, nil
}

// BoltNodes iterates a bucket through a cursor of a read transaction.
type BoltNodes struct {
	tx     *bolt.Tx
	cursor *bolt.Cursor
	value  []byte
	err    error
	closed bool
}

func (i *BoltNodes) End() bool {
	return i.closed || i.err != nil || i.value == nil
}

func (i *BoltNodes) Next() (statement.Node, bool, error) {
	if i.End() {
		return statement.Node{}, false, nil
	}
	var n statement.Node
	if err := decode(i.value, &n); err != nil {
		i.err = errors.Wrap(err, "decoding node")
		return statement.Node{}, false, i.err
	}
	_, i.value = i.cursor.Next()
	return n, true, nil
}

// Err returns the decoding error that stopped the iteration.
func (i *BoltNodes) Err() error {
	return i.err
}

// Close releases the read transaction.
func (i *BoltNodes) Close() error {
	if i.closed {
		return nil
	}
	i.closed = true
	i.value = nil
	return i.tx.Rollback()
}

// uintToBytes returns an 8-byte big endian representation of v.
func uintToBytes(v uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, v)
	return b
}

func encode(n statement.Node) ([]byte, error) {
	buf := new(bytes.Buffer)
	if err := gob.NewEncoder(buf).Encode(n); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func decode(data []byte, n *statement.Node) error {
	return gob.NewDecoder(bytes.NewReader(data)).Decode(n)
}
