package render

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/google/uuid"
	"github.com/vkngwrapper/core/v3/common"
	"github.com/vkngwrapper/core/v3/core1_0"
)

func TestBytesToBytecodeLittleEndianWords(t *testing.T) {
	code := bytesToBytecode([]byte{0x03, 0x02, 0x23, 0x07, 0xff, 0x00, 0x00, 0x00})

	if len(code) != 2 {
		t.Fatalf("got %d words, want 2", len(code))
	}
	if code[0] != 0x07230203 {
		t.Errorf("word 0 = %#x, want SPIR-V magic 0x07230203", code[0])
	}
	if code[1] != 0xff {
		t.Errorf("word 1 = %#x, want 0xff", code[1])
	}
}

func deviceProps() *core1_0.PhysicalDeviceProperties {
	return &core1_0.PhysicalDeviceProperties{
		VendorID:          0x10de,
		DeviceID:          0x2482,
		PipelineCacheUUID: uuid.MustParse("11111111-2222-3333-4444-555555555555"),
	}
}

func cacheHeader(props *core1_0.PhysicalDeviceProperties) []byte {
	buf := &bytes.Buffer{}
	_ = binary.Write(buf, common.ByteOrder, uint32(32))
	_ = binary.Write(buf, common.ByteOrder, common.PipelineCacheHeaderVersion1)
	_ = binary.Write(buf, common.ByteOrder, props.VendorID)
	_ = binary.Write(buf, common.ByteOrder, props.DeviceID)
	_ = binary.Write(buf, common.ByteOrder, props.PipelineCacheUUID)
	return buf.Bytes()
}

func TestValidateCacheHeaderAccepts(t *testing.T) {
	props := deviceProps()
	if err := validateCacheHeader(cacheHeader(props), props); err != nil {
		t.Errorf("matching header rejected: %v", err)
	}
}

func TestValidateCacheHeaderRejectsMismatches(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(props *core1_0.PhysicalDeviceProperties)
	}{
		{"vendor id", func(p *core1_0.PhysicalDeviceProperties) { p.VendorID = 0x8086 }},
		{"device id", func(p *core1_0.PhysicalDeviceProperties) { p.DeviceID = 0x9999 }},
		{"cache uuid", func(p *core1_0.PhysicalDeviceProperties) {
			p.PipelineCacheUUID = uuid.MustParse("aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee")
		}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			cacheProps := deviceProps()
			data := cacheHeader(cacheProps)

			driverProps := deviceProps()
			test.mutate(driverProps)

			if err := validateCacheHeader(data, driverProps); err == nil {
				t.Error("mismatched header accepted")
			}
		})
	}
}

func TestValidateCacheHeaderRejectsTruncated(t *testing.T) {
	props := deviceProps()
	data := cacheHeader(props)

	if err := validateCacheHeader(data[:6], props); err == nil {
		t.Error("truncated header accepted")
	}
	if err := validateCacheHeader(nil, props); err == nil {
		t.Error("empty data accepted")
	}
}
