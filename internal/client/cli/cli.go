package cli

import (
	"context"
	"fmt"

	"github.com/assetops/fieldsync/internal/client/api"
	"github.com/assetops/fieldsync/internal/client/auth"
	"github.com/assetops/fieldsync/internal/client/cache"
	"github.com/assetops/fieldsync/internal/client/iocli"
	"github.com/assetops/fieldsync/internal/client/queue"
	"github.com/assetops/fieldsync/internal/client/storage"
	"github.com/assetops/fieldsync/internal/client/sync"
)

// connectivity is the slice of the netwatch monitor the commands need:
// the current state for every command, the polling loop for watch mode.
type connectivity interface {
	Online() bool
	Run(ctx context.Context)
}

// Cli binds the command implementations to the client services.
type Cli struct {
	io        iocli.IO
	apiClient api.ClientAPI
	auth      *auth.Service
	cache     *cache.Cache
	queue     *queue.Manager
	engine    *sync.Service
	scheduler *sync.Scheduler
	monitor   connectivity
	metadata  storage.MetadataStorage

	// offlineEnabled gates the operation queue. With the flag off,
	// mutations fail immediately when the server is unreachable.
	offlineEnabled bool
}

func New(
	io iocli.IO,
	apiClient api.ClientAPI,
	authService *auth.Service,
	assetCache *cache.Cache,
	queueManager *queue.Manager,
	engine *sync.Service,
	scheduler *sync.Scheduler,
	monitor connectivity,
	metadata storage.MetadataStorage,
	offlineEnabled bool,
) *Cli {
	return &Cli{
		io:             io,
		apiClient:      apiClient,
		auth:           authService,
		cache:          assetCache,
		queue:          queueManager,
		engine:         engine,
		scheduler:      scheduler,
		monitor:        monitor,
		metadata:       metadata,
		offlineEnabled: offlineEnabled,
	}
}

// syncAfterEnqueue runs one sync pass right after a mutation was queued
// while the server is reachable. One-shot commands exit as soon as Run
// returns, so waiting for the background scheduler would leave the
// operation sitting in the queue.
func (c *Cli) syncAfterEnqueue(ctx context.Context) {
	if !c.monitor.Online() || c.queue.Pending() == 0 {
		return
	}

	result := c.engine.RunSyncPass(ctx)
	if result.Succeeded > 0 {
		c.io.Printf("✓ Synced %d operation(s)\n", result.Succeeded)
	}
	if result.Requeued > 0 {
		c.io.Printf("%d operation(s) will be retried on the next sync\n", result.Requeued)
	}
}

// ensureQueueable rejects mutations when offline queueing is disabled and
// the server cannot be reached right now.
func (c *Cli) ensureQueueable() error {
	if !c.offlineEnabled && !c.monitor.Online() {
		return fmt.Errorf("server unreachable and offline queueing is disabled (FIELDSYNC_OFFLINE_ENABLED=false)")
	}
	return nil
}

func PrintUsage() {
	fmt.Println("FieldSync - offline-first IT inventory client")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  fieldsync [OPTIONS] COMMAND")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --version            Show version information")
	fmt.Println("  --server URL         Server URL (default: http://localhost:8080)")
	fmt.Println("  --db PATH            Path to local queue database (default: fieldsync.db)")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  login                          Login to the inventory server")
	fmt.Println("  logout                         Remove the local session")
	fmt.Println("  status                         Show connectivity, session and queue state")
	fmt.Println("  scan <tag>                     Look up an asset by inventory tag")
	fmt.Println("  get <id>                       Show asset details")
	fmt.Println("  list                           List known assets")
	fmt.Println("  update <id> <field=value>...   Queue an asset field update")
	fmt.Println("  photo <id> <file>              Queue a photo upload")
	fmt.Println("  sign <id> <signer> <action> <file>  Queue a signature upload")
	fmt.Println("  checkout <id> <recipient> [signature.png]  Issue equipment for home office")
	fmt.Println("  return <id> [signature.png]    Take equipment back to stock")
	fmt.Println("  sync                           Run one sync pass now")
	fmt.Println("  queue                          Show queued operations")
	fmt.Println("  queue clear                    Drop every queued operation")
	fmt.Println("  watch                          Keep syncing in the background until interrupted")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  fieldsync login")
	fmt.Println("  fieldsync scan IT-00042")
	fmt.Println("  fieldsync update 42 status=repair notes='screen flicker'")
	fmt.Println("  fieldsync photo 42 ./front.jpg")
	fmt.Println("  fieldsync checkout 42 'J. Smith' ./signature.png")
	fmt.Println("  fieldsync --server https://inventory.example.com sync")
}
