package metrics

// Codec metrics. They live in DefaultRegistry so the rlp and rlptest
// packages can record without passing a registry around.

var (
	// DecodeOK counts top-level values decoded successfully.
	DecodeOK = DefaultRegistry.Counter("rlp.decode.ok")
	// DecodeFailed counts decode calls rejected with an error.
	DecodeFailed = DefaultRegistry.Counter("rlp.decode.failed")
	// DecodeBytes counts input bytes consumed by successful decodes.
	DecodeBytes = DefaultRegistry.Counter("rlp.decode.bytes")
	// DecodeDepth records the deepest list nesting seen per decode call.
	DecodeDepth = DefaultRegistry.Histogram("rlp.decode.depth")

	// EncodeOps counts values encoded through an encoder pool.
	EncodeOps = DefaultRegistry.Counter("rlp.encode.ops")
	// EncodeBytes counts output bytes produced through an encoder pool.
	EncodeBytes = DefaultRegistry.Counter("rlp.encode.bytes")
	// PoolHits counts encoder buffers reused from a pool.
	PoolHits = DefaultRegistry.Counter("rlp.pool.hits")
	// PoolMisses counts encoder buffers freshly allocated by a pool.
	PoolMisses = DefaultRegistry.Counter("rlp.pool.misses")
	// PoolInUse is the number of pooled buffers currently checked out.
	PoolInUse = DefaultRegistry.Gauge("rlp.pool.inuse")

	// FixtureRuns counts fixtures checked by a test vector runner.
	FixtureRuns = DefaultRegistry.Counter("rlptest.fixtures.run")
	// FixtureFailures counts fixtures that failed their check.
	FixtureFailures = DefaultRegistry.Counter("rlptest.fixtures.failed")
	// FixtureTime records per-fixture check time in microseconds.
	FixtureTime = DefaultRegistry.Histogram("rlptest.fixture.us")
)
