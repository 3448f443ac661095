package io

// Record is a word delivered through a channel, with its memory address.
type Record struct {
	Addr  uint8
	Value uint16
}

// Temporary is a FIFO of records. Stored words can be fetched back in
// order, which makes it both a recording sink and a loopback source.
type Temporary struct {
	Capacity int // Capacity in records. Zero is unbounded.

	Data      []Record
	ReadIndex int
}

var _ Channel = (*Temporary)(nil)

// Rewind resets the temporary storage to empty.
func (temp *Temporary) Rewind() {
	temp.Data = nil
	temp.ReadIndex = 0
}

// Fetch returns the oldest unread word.
func (temp *Temporary) Fetch(addr uint8) (value uint16, err error) {
	if temp.ReadIndex >= len(temp.Data) {
		err = ErrChannelEmpty
		return
	}

	value = temp.Data[temp.ReadIndex].Value
	temp.ReadIndex++
	return
}

// Store appends a word. Returns ErrChannelFull if the capacity is reached.
func (temp *Temporary) Store(addr uint8, value uint16) (err error) {
	if temp.Capacity > 0 && len(temp.Data) >= temp.Capacity {
		err = ErrChannelFull
		return
	}

	temp.Data = append(temp.Data, Record{Addr: addr, Value: value})
	return
}

// Values returns the stored words, in order.
func (temp *Temporary) Values() (values []uint16) {
	for _, record := range temp.Data {
		values = append(values, record.Value)
	}
	return
}
