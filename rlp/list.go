package rlp

// EncodeList writes vals as a list of their individual encodings.
func EncodeList[T Encodable](b *EncBuffer, vals []T) {
	idx := b.List()
	for _, v := range vals {
		v.EncodeRLP(b)
	}
	b.ListEnd(idx)
}

// DecodeList reads a list from s and decodes every element into a T.
// The returned slice is non-nil even for an empty list.
func DecodeList[T any, PT interface {
	*T
	Decodable
}](s *Stream) ([]T, error) {
	vals := []T{}
	err := s.FromList(func() error {
		for s.MoreInList() {
			var v T
			if err := PT(&v).DecodeRLP(s); err != nil {
				return err
			}
			vals = append(vals, v)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return vals, nil
}
