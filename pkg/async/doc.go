// Package async runs functions in goroutines and collects their results
// through generic futures.
//
//	futures := make([]*async.Future[string], 0, len(shards))
//	for _, shard := range shards {
//		futures = append(futures, async.Go(ctx, func(ctx context.Context) (string, error) {
//			return records.Save(ctx, store, shard.Path, shard.Rows, shard.Options...)
//		}))
//	}
//	paths, err := async.WaitAll(ctx, futures...)
//
// WaitAll drains every future and joins all failures, so callers can report
// each failed shard rather than only the first one.
package async
