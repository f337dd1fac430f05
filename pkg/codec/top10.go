package codec

import (
	"encoding/binary"

	"github.com/cockroachdb/errors"
)

// Layout of one decrypted leaderboard list:
//
//	[Count(4)][Time(4) x 10][Name1(15) x 10][Name2(15) x 10]
const (
	Top10MaxEntries = 10
	Top10NameSize   = 15

	top10TimesOffset = 4
	top10Name1Offset = top10TimesOffset + 4*Top10MaxEntries
	top10Name2Offset = top10Name1Offset + Top10NameSize*Top10MaxEntries
)

// ParseTop10 parses one decrypted 344-byte leaderboard list. Only the
// entries below the stored count are read.
func ParseTop10(list []byte) ([]Top10Entry, error) {
	if len(list) != Top10HalfSize {
		return nil, errors.Wrapf(ErrInvalidBlockSize, "leaderboard list is %d bytes, want %d", len(list), Top10HalfSize)
	}

	count := int32(binary.LittleEndian.Uint32(list[0:4]))
	if count < 0 || count > Top10MaxEntries {
		return nil, errors.Wrapf(ErrInvalidLeaderboardCount, "count %d outside [0, %d]", count, Top10MaxEntries)
	}

	entries := make([]Top10Entry, 0, count)
	for n := 0; n < int(count); n++ {
		timeOff := top10TimesOffset + 4*n
		name1Off := top10Name1Offset + Top10NameSize*n
		name2Off := top10Name2Offset + Top10NameSize*n

		name1, err := decodeText(list[name1Off : name1Off+Top10NameSize])
		if err != nil {
			return nil, err
		}
		name2, err := decodeText(list[name2Off : name2Off+Top10NameSize])
		if err != nil {
			return nil, err
		}
		entries = append(entries, Top10Entry{
			Name1: name1,
			Name2: name2,
			Time:  int32(binary.LittleEndian.Uint32(list[timeOff : timeOff+4])),
		})
	}
	return entries, nil
}

// EncodeTop10 builds the plaintext 344-byte list for entries. Unused slots
// are zero.
func EncodeTop10(entries []Top10Entry) ([]byte, error) {
	if len(entries) > Top10MaxEntries {
		return nil, errors.Wrapf(ErrInvalidLeaderboardCount, "%d entries, at most %d allowed", len(entries), Top10MaxEntries)
	}

	list := make([]byte, Top10HalfSize)
	binary.LittleEndian.PutUint32(list[0:4], uint32(len(entries)))
	for n, e := range entries {
		name1, err := encodeText("leaderboard name", e.Name1, Top10NameSize)
		if err != nil {
			return nil, err
		}
		name2, err := encodeText("leaderboard name", e.Name2, Top10NameSize)
		if err != nil {
			return nil, err
		}
		binary.LittleEndian.PutUint32(list[top10TimesOffset+4*n:], uint32(e.Time))
		copy(list[top10Name1Offset+Top10NameSize*n:], name1)
		copy(list[top10Name2Offset+Top10NameSize*n:], name2)
	}
	return list, nil
}

// decodeTop10Block decrypts a full leaderboard block into its single and
// multi-player lists.
func decodeTop10Block(block []byte) (single, multi []Top10Entry, err error) {
	plain, err := CryptTop10(block)
	if err != nil {
		return nil, nil, err
	}
	if single, err = ParseTop10(plain[:Top10HalfSize]); err != nil {
		return nil, nil, errors.Wrap(err, "single-player leaderboard")
	}
	if multi, err = ParseTop10(plain[Top10HalfSize:]); err != nil {
		return nil, nil, errors.Wrap(err, "multi-player leaderboard")
	}
	return single, multi, nil
}

// encodeTop10Block is the inverse of decodeTop10Block.
func encodeTop10Block(single, multi []Top10Entry) ([]byte, error) {
	s, err := EncodeTop10(single)
	if err != nil {
		return nil, errors.Wrap(err, "single-player leaderboard")
	}
	m, err := EncodeTop10(multi)
	if err != nil {
		return nil, errors.Wrap(err, "multi-player leaderboard")
	}
	return CryptTop10(append(s, m...))
}
