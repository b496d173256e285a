package render

import (
	"bytes"
	"encoding/binary"
	"log"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/loov/hrtime"
	"github.com/vkngwrapper/core/v3/common"
	"github.com/vkngwrapper/core/v3/core1_0"
)

func bytesToBytecode(b []byte) []uint32 {
	byteCode := make([]uint32, len(b)/4)
	for i := 0; i < len(byteCode); i++ {
		byteIndex := i * 4
		byteCode[i] = 0
		byteCode[i] |= uint32(b[byteIndex])
		byteCode[i] |= uint32(b[byteIndex+1]) << 8
		byteCode[i] |= uint32(b[byteIndex+2]) << 16
		byteCode[i] |= uint32(b[byteIndex+3]) << 24
	}

	return byteCode
}

// CreateShaderModule builds a shader module from SPIR-V bytes.
func (c *Context) CreateShaderModule(spirv []byte) (core1_0.ShaderModule, error) {
	if len(spirv)%4 != 0 {
		return core1_0.ShaderModule{}, errors.Errorf("SPIR-V byte length %d is not a multiple of 4", len(spirv))
	}

	module, _, err := c.Device.CreateShaderModule(nil, core1_0.ShaderModuleCreateInfo{
		Code: bytesToBytecode(spirv),
	})
	return module, err
}

// validateCacheHeader checks saved pipeline cache data against the device
// it was produced on. Stale or foreign caches must not be fed back to the
// driver.
func validateCacheHeader(data []byte, props *core1_0.PhysicalDeviceProperties) error {
	reader := bytes.NewReader(data)

	var headerLength, vendorID, deviceID uint32
	var cacheHeaderVersion common.PipelineCacheHeaderVersion

	err := binary.Read(reader, common.ByteOrder, &headerLength)
	if err != nil {
		return errors.Wrap(err, "cache header length")
	}
	if headerLength <= 0 {
		return errors.Errorf("bad cache header length 0x%x", headerLength)
	}

	err = binary.Read(reader, common.ByteOrder, &cacheHeaderVersion)
	if err != nil {
		return errors.Wrap(err, "cache header version")
	}
	if cacheHeaderVersion != common.PipelineCacheHeaderVersion1 {
		return errors.Errorf("unsupported cache header version 0x%x", uint32(cacheHeaderVersion))
	}

	err = binary.Read(reader, common.ByteOrder, &vendorID)
	if err != nil {
		return errors.Wrap(err, "cache vendor id")
	}
	if vendorID != props.VendorID {
		return errors.Errorf("vendor id mismatch: cache 0x%x, driver 0x%x", vendorID, props.VendorID)
	}

	err = binary.Read(reader, common.ByteOrder, &deviceID)
	if err != nil {
		return errors.Wrap(err, "cache device id")
	}
	if deviceID != props.DeviceID {
		return errors.Errorf("device id mismatch: cache 0x%x, driver 0x%x", deviceID, props.DeviceID)
	}

	var cacheUUID uuid.UUID
	err = binary.Read(reader, common.ByteOrder, &cacheUUID)
	if err != nil {
		return errors.Wrap(err, "cache uuid")
	}
	if cacheUUID != props.PipelineCacheUUID {
		return errors.Errorf("pipeline cache uuid mismatch: cache %s, driver %s", cacheUUID, props.PipelineCacheUUID)
	}

	return nil
}

func (c *Context) createPipelineCache() error {
	var initialData []byte

	if c.opts.PipelineCachePath != "" {
		data, err := os.ReadFile(c.opts.PipelineCachePath)
		if err == nil {
			props, propErr := c.InstanceDriver.GetPhysicalDeviceProperties(c.PhysicalDevice)
			if propErr != nil {
				return propErr
			}

			err = validateCacheHeader(data, props)
			if err != nil {
				log.Printf("discarding pipeline cache %s: %v", c.opts.PipelineCachePath, err)
				_ = os.Remove(c.opts.PipelineCachePath)
			} else {
				initialData = data
			}
		}
	}

	start := hrtime.Now()
	cache, _, err := c.Device.CreatePipelineCache(nil, core1_0.PipelineCacheCreateInfo{
		InitialData: initialData,
	})
	if err != nil {
		return err
	}
	log.Printf("pipeline cache created in %s (seeded with %d bytes)", hrtime.Since(start), len(initialData))

	c.PipelineCache = cache
	return nil
}

// SavePipelineCache writes the pipeline cache contents to the configured
// path so the next run can skip pipeline compilation. No-op when no path was
// configured.
func (c *Context) SavePipelineCache() error {
	if c.opts.PipelineCachePath == "" || !c.PipelineCache.Initialized() {
		return nil
	}

	data, _, err := c.Device.GetPipelineCacheData(c.PipelineCache)
	if err != nil {
		return err
	}

	return os.WriteFile(c.opts.PipelineCachePath, data, 0o644)
}
