// Package asuna holds the shared error values of the asuna toolkit.
//
// The toolkit itself lives in the sub packages:
//
//   - pkg/listkit: List[T], an ordered sequence with chunking, splitting, merging and serialization
//   - pkg/dictkit: Dict[K, V], an insertion ordered mapping with filtering, flattening, grouping and serialization
//   - pkg/chunkkit: Chunk, Split and MultiChunk over plain slices
//   - pkg/statkit: mean, median, mode, variance and standard deviation of numbers
//   - pkg/filekit: JSON, CSV and YAML file codecs
//
// Errors are constants, so callers can check them with errors.Is:
//
//	if errors.Is(err, asuna.ErrInvalidArgument) { ... }
package asuna
