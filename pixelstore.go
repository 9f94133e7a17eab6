package glstate

import "fmt"

// DisengagedValue marks a cached pixel storage value as unknown. The
// first apply after a reset always goes through to the driver.
const DisengagedValue int32 = -1

// PixelStorage describes how pixel data is laid out in client memory
// for transfers. The zero value plus Alignment 4 matches the GL
// defaults; use DefaultPixelStorage.
type PixelStorage struct {
	// Alignment of row starts in bytes. GL default is 4.
	Alignment int32

	// RowLength is the number of pixels per row, 0 meaning tightly
	// packed.
	RowLength int32

	// ImageHeight is the number of rows per 3D image slice, 0 meaning
	// tightly packed.
	ImageHeight int32

	// SkipPixels, SkipRows and SkipImages offset into the data.
	SkipPixels int32
	SkipRows   int32
	SkipImages int32
}

// DefaultPixelStorage returns storage matching the GL defaults.
func DefaultPixelStorage() PixelStorage {
	return PixelStorage{Alignment: 4}
}

// CompressedPixelStorage adds block properties for compressed formats.
// Non-default block properties need desktop GL with
// GL_ARB_compressed_texture_pixel_storage.
type CompressedPixelStorage struct {
	PixelStorage

	// BlockWidth, BlockHeight and BlockDepth are the compressed block
	// extent in pixels, 0 meaning format-default.
	BlockWidth  int32
	BlockHeight int32
	BlockDepth  int32

	// BlockDataSize is the compressed block size in bytes, 0 meaning
	// format-default.
	BlockDataSize int32
}

func (s CompressedPixelStorage) isDefaultBlock() bool {
	return s.BlockWidth == 0 && s.BlockHeight == 0 && s.BlockDepth == 0 && s.BlockDataSize == 0
}

// PixelStore caches the pixel storage state last applied to the
// context, one instance each for the pack and unpack directions.
// Applies diff against the cache so redundant glPixelStorei calls are
// skipped.
type PixelStore struct {
	alignment   int32
	rowLength   int32
	imageHeight int32
	skipPixels  int32
	skipRows    int32
	skipImages  int32

	blockWidth    int32
	blockHeight   int32
	blockDepth    int32
	blockDataSize int32

	// Reset values depend on capabilities: 0 where the state cannot be
	// changed on this context, so it is never touched.
	rowLengthReset int32
	blockSizeReset int32
}

// newPixelStore returns a cache matching a fresh context, where every
// value still has its GL default.
func newPixelStore(rowLengthReset, blockSizeReset int32) PixelStore {
	return PixelStore{
		alignment:      4,
		rowLengthReset: rowLengthReset,
		blockSizeReset: blockSizeReset,
	}
}

// Reset forgets the cached values so the next apply re-sends
// everything. Call it after pixel storage was changed behind the
// renderer's back.
func (s *PixelStore) Reset() {
	s.alignment = DisengagedValue
	s.rowLength = s.rowLengthReset
	s.imageHeight = DisengagedValue
	s.skipPixels = DisengagedValue
	s.skipRows = DisengagedValue
	s.skipImages = DisengagedValue
	s.blockWidth = s.blockSizeReset
	s.blockHeight = s.blockSizeReset
	s.blockDepth = s.blockSizeReset
	s.blockDataSize = s.blockSizeReset
}

// storeParams maps one transfer direction to its parameter names.
type storeParams struct {
	alignment   PixelStoreParameter
	rowLength   PixelStoreParameter
	imageHeight PixelStoreParameter
	skipPixels  PixelStoreParameter
	skipRows    PixelStoreParameter
	skipImages  PixelStoreParameter

	blockWidth    PixelStoreParameter
	blockHeight   PixelStoreParameter
	blockDepth    PixelStoreParameter
	blockDataSize PixelStoreParameter
}

var unpackParams = storeParams{
	alignment:     UnpackAlignment,
	rowLength:     UnpackRowLength,
	imageHeight:   UnpackImageHeight,
	skipPixels:    UnpackSkipPixels,
	skipRows:      UnpackSkipRows,
	skipImages:    UnpackSkipImages,
	blockWidth:    UnpackCompressedBlockWidth,
	blockHeight:   UnpackCompressedBlockHeight,
	blockDepth:    UnpackCompressedBlockDepth,
	blockDataSize: UnpackCompressedBlockSize,
}

var packParams = storeParams{
	alignment:     PackAlignment,
	rowLength:     PackRowLength,
	imageHeight:   PackImageHeight,
	skipPixels:    PackSkipPixels,
	skipRows:      PackSkipRows,
	skipImages:    PackSkipImages,
	blockWidth:    PackCompressedBlockWidth,
	blockHeight:   PackCompressedBlockHeight,
	blockDepth:    PackCompressedBlockDepth,
	blockDataSize: PackCompressedBlockSize,
}

// ApplyUnpackStorage applies storage for transfers from client memory
// to the GL, sending only the values that differ from the cache.
func (r *Renderer) ApplyUnpackStorage(storage PixelStorage) error {
	return r.applyStorage(storage, &r.unpack, unpackParams, false)
}

// ApplyPackStorage applies storage for transfers from the GL to client
// memory, sending only the values that differ from the cache.
func (r *Renderer) ApplyPackStorage(storage PixelStorage) error {
	return r.applyStorage(storage, &r.pack, packParams, true)
}

// ApplyCompressedUnpackStorage applies compressed storage for transfers
// from client memory to the GL.
func (r *Renderer) ApplyCompressedUnpackStorage(storage CompressedPixelStorage) error {
	return r.applyCompressedStorage(storage, &r.unpack, unpackParams, false)
}

// ApplyCompressedPackStorage applies compressed storage for transfers
// from the GL to client memory.
func (r *Renderer) ApplyCompressedPackStorage(storage CompressedPixelStorage) error {
	return r.applyCompressedStorage(storage, &r.pack, packParams, true)
}

// ResetPixelStorage forgets both caches. Call it after pixel storage
// was changed outside of the renderer.
func (r *Renderer) ResetPixelStorage() {
	r.unpack.Reset()
	r.pack.Reset()
}

func (r *Renderer) applyStorage(storage PixelStorage, store *PixelStore, p storeParams, pack bool) error {
	target := r.ctx.target

	if storage.RowLength != 0 {
		switch {
		case target == TargetWebGL1:
			return fmt.Errorf("%w: non-zero row length needs WebGL 2", ErrPixelStorageUnsupported)
		case target == TargetGLES2 && !pack && !r.ctx.IsExtensionSupported(EXTUnpackSubimage):
			return fmt.Errorf("%w: non-zero unpack row length needs OpenGL ES 3.0 or GL_EXT_unpack_subimage", ErrPixelStorageUnsupported)
		case target == TargetGLES2 && pack && !r.ctx.IsExtensionSupported(NVPackSubimage):
			return fmt.Errorf("%w: non-zero pack row length needs OpenGL ES 3.0 or GL_NV_pack_subimage", ErrPixelStorageUnsupported)
		}
	}
	if storage.ImageHeight != 0 {
		if pack && target != TargetGL {
			return fmt.Errorf("%w: non-zero pack image height needs OpenGL", ErrPixelStorageUnsupported)
		}
		if !pack && (target == TargetGLES2 || target == TargetWebGL1) {
			return fmt.Errorf("%w: non-zero image height needs OpenGL ES 3.0 or WebGL 2", ErrPixelStorageUnsupported)
		}
	}
	if storage.SkipImages != 0 && pack && target != TargetGL {
		return fmt.Errorf("%w: non-zero pack image skip needs OpenGL", ErrPixelStorageUnsupported)
	}

	if storage.Alignment != store.alignment {
		r.api.PixelStore(p.alignment, storage.Alignment)
		store.alignment = storage.Alignment
	}
	if storage.RowLength != store.rowLength {
		r.api.PixelStore(p.rowLength, storage.RowLength)
		store.rowLength = storage.RowLength
	}

	// Image height exists on desktop always, on ES 3+ and WebGL 2 for
	// unpack only. Where it does not exist the requested value is
	// already known to be zero and the state is left alone.
	imageHeightExists := target == TargetGL ||
		(!pack && (target == TargetGLES3 || target == TargetWebGL2))
	if imageHeightExists && storage.ImageHeight != store.imageHeight {
		r.api.PixelStore(p.imageHeight, storage.ImageHeight)
		store.imageHeight = storage.ImageHeight
	}

	// Skip parameters do not exist on ES 2 and WebGL 1; callers there
	// offset the data pointer themselves.
	if target != TargetGLES2 && target != TargetWebGL1 {
		if storage.SkipPixels != store.skipPixels {
			r.api.PixelStore(p.skipPixels, storage.SkipPixels)
			store.skipPixels = storage.SkipPixels
		}
		if storage.SkipRows != store.skipRows {
			r.api.PixelStore(p.skipRows, storage.SkipRows)
			store.skipRows = storage.SkipRows
		}
		if imageHeightExists && storage.SkipImages != store.skipImages {
			r.api.PixelStore(p.skipImages, storage.SkipImages)
			store.skipImages = storage.SkipImages
		}
	}

	return nil
}

func (r *Renderer) applyCompressedStorage(storage CompressedPixelStorage, store *PixelStore, p storeParams, pack bool) error {
	if r.ctx.target != TargetGL || !r.ctx.IsExtensionSupported(ARBCompressedTexturePixelStorage) {
		if !storage.isDefaultBlock() {
			return fmt.Errorf("%w: non-default compressed block properties need OpenGL with GL_ARB_compressed_texture_pixel_storage", ErrPixelStorageUnsupported)
		}
		// Block state does not exist here, the base storage is all
		// there is to apply.
		return r.applyStorage(storage.PixelStorage, store, p, pack)
	}

	if !storage.isDefaultBlock() &&
		(storage.BlockWidth == 0 || storage.BlockHeight == 0 || storage.BlockDepth == 0 || storage.BlockDataSize == 0) {
		return fmt.Errorf("%w: compressed block extent and data size have to be specified together", ErrPixelStorageUnsupported)
	}

	if err := r.applyStorage(storage.PixelStorage, store, p, pack); err != nil {
		return err
	}

	// Common case: both the requested and the cached block state are
	// format-default, nothing to diff.
	if storage.isDefaultBlock() &&
		store.blockWidth == 0 && store.blockHeight == 0 &&
		store.blockDepth == 0 && store.blockDataSize == 0 {
		return nil
	}

	if storage.BlockWidth != store.blockWidth {
		r.api.PixelStore(p.blockWidth, storage.BlockWidth)
		store.blockWidth = storage.BlockWidth
	}
	if storage.BlockHeight != store.blockHeight {
		r.api.PixelStore(p.blockHeight, storage.BlockHeight)
		store.blockHeight = storage.BlockHeight
	}
	if storage.BlockDepth != store.blockDepth {
		r.api.PixelStore(p.blockDepth, storage.BlockDepth)
		store.blockDepth = storage.BlockDepth
	}
	if storage.BlockDataSize != store.blockDataSize {
		r.api.PixelStore(p.blockDataSize, storage.BlockDataSize)
		store.blockDataSize = storage.BlockDataSize
	}

	return nil
}
