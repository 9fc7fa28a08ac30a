// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers can register hooks at startup
// to receive events about script parsing, rendering, and asset cache activity.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// This approach:
//   - Avoids import cycles (hooks are registered by main, not by libraries)
//   - Keeps the core library dependency-free from observability frameworks
//   - Allows different backends (OpenTelemetry, Prometheus, DataDog, etc.)
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetPipelineHooks(&myPipelineHooks{})
//	    observability.SetAssetHooks(&myAssetHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Pipeline().OnRenderStart(ctx, index, scene)
//	// ... render the image ...
//	observability.Pipeline().OnRenderComplete(ctx, index, scene, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Pipeline Hooks
// =============================================================================

// PipelineHooks receives events from the image generation pipeline.
type PipelineHooks interface {
	// Parse events
	OnParseStart(ctx context.Context, source string)
	OnParseComplete(ctx context.Context, source string, instructionCount, warningCount int, duration time.Duration)

	// Render events, one pair per instruction
	OnRenderStart(ctx context.Context, index int, scene string)
	OnRenderComplete(ctx context.Context, index int, scene string, duration time.Duration, err error)

	// Run events, one pair per full pipeline execution
	OnRunStart(ctx context.Context, runID string, instructionCount int)
	OnRunComplete(ctx context.Context, runID string, rendered, failed int, duration time.Duration)
}

// =============================================================================
// Asset Hooks
// =============================================================================

// AssetHooks receives events from font and background resolution.
type AssetHooks interface {
	// OnCacheHit records a resolved asset served from cache.
	OnCacheHit(ctx context.Context, assetType, key string)

	// OnCacheMiss records an asset loaded from disk.
	OnCacheMiss(ctx context.Context, assetType, key string)

	// OnFallback records a resolution that fell back to a default asset.
	OnFallback(ctx context.Context, assetType, key string)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopPipelineHooks is a no-op implementation of PipelineHooks.
type NoopPipelineHooks struct{}

func (NoopPipelineHooks) OnParseStart(context.Context, string)                               {}
func (NoopPipelineHooks) OnParseComplete(context.Context, string, int, int, time.Duration)   {}
func (NoopPipelineHooks) OnRenderStart(context.Context, int, string)                         {}
func (NoopPipelineHooks) OnRenderComplete(context.Context, int, string, time.Duration, error) {
}
func (NoopPipelineHooks) OnRunStart(context.Context, string, int)                     {}
func (NoopPipelineHooks) OnRunComplete(context.Context, string, int, int, time.Duration) {}

// NoopAssetHooks is a no-op implementation of AssetHooks.
type NoopAssetHooks struct{}

func (NoopAssetHooks) OnCacheHit(context.Context, string, string)  {}
func (NoopAssetHooks) OnCacheMiss(context.Context, string, string) {}
func (NoopAssetHooks) OnFallback(context.Context, string, string)  {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	pipelineHooks PipelineHooks = NoopPipelineHooks{}
	assetHooks    AssetHooks    = NoopAssetHooks{}
	hooksMu       sync.RWMutex
)

// SetPipelineHooks registers custom pipeline hooks.
// This should be called once at application startup before any pipeline operations.
func SetPipelineHooks(h PipelineHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		pipelineHooks = h
	}
}

// SetAssetHooks registers custom asset hooks.
// This should be called once at application startup before any asset resolution.
func SetAssetHooks(h AssetHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		assetHooks = h
	}
}

// Pipeline returns the registered pipeline hooks.
func Pipeline() PipelineHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return pipelineHooks
}

// Asset returns the registered asset hooks.
func Asset() AssetHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return assetHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	pipelineHooks = NoopPipelineHooks{}
	assetHooks = NoopAssetHooks{}
}
