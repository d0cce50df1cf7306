package cmd

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"lang-atlas/core/storage"

	"github.com/minio/minio-go/v7"
	"github.com/spf13/cobra"
)

// publishCmd represents the publish command
var publishCmd = &cobra.Command{
	Use:   "publish",
	Short: "Upload the derived artifacts to object storage",
	Long: `Uploads every derived CSV present on disk to the configured S3/MinIO
bucket, creating the bucket when missing. Object names are the file names
under the configured prefix.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, logg := bootstrap()
		defer logg.Sync()

		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			logg.Fatal("Failed to create storage client", zap.Error(err))
		}

		ctx := cmd.Context()
		bucket := cfg.Storage.Bucket
		exists, err := client.BucketExists(ctx, bucket)
		if err != nil {
			logg.Fatal("Bucket check failed", zap.Error(err))
		}
		if !exists {
			if err := client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{Region: cfg.Storage.Region}); err != nil {
				logg.Fatal("Bucket creation failed", zap.Error(err))
			}
			logg.Info("Created bucket", zap.String("bucket", bucket))
		}

		paths := []string{
			cfg.Data.MasterCSV(),
			cfg.Data.AliasesCSV(),
			cfg.Data.AugmentedCSV(),
			cfg.Data.HyperpolyglotMissingCSV(),
			cfg.Data.PygmentsCSV(),
			cfg.Data.PygmentsMissingCSV(),
			cfg.Data.RosettaCSV(),
			cfg.Data.RosettaMissingCSV(),
			cfg.Data.RosettaDumpCSV(),
			cfg.Data.ExtensionsCSV(),
		}

		uploaded := 0
		for _, path := range paths {
			info, err := os.Stat(path)
			if err != nil {
				continue
			}
			f, err := os.Open(path)
			if err != nil {
				logg.Error("Failed to open artifact", zap.String("path", path), zap.Error(err))
				continue
			}
			object := cfg.Storage.Prefix + filepath.Base(path)
			_, err = client.PutObject(ctx, bucket, object, f, info.Size(),
				minio.PutObjectOptions{ContentType: "text/csv"})
			f.Close()
			if err != nil {
				logg.Fatal("Upload failed", zap.String("object", object), zap.Error(err))
			}
			logg.Info("Uploaded artifact",
				zap.String("object", object), zap.Int64("bytes", info.Size()))
			uploaded++
		}
		if uploaded == 0 {
			logg.Fatal("Nothing to publish; run build first")
		}

		// Verify the uploads landed under the prefix.
		remote := 0
		for obj := range client.ListObjects(ctx, bucket, minio.ListObjectsOptions{Prefix: cfg.Storage.Prefix}) {
			if obj.Err != nil {
				logg.Warn("Post-publish listing failed", zap.Error(obj.Err))
				break
			}
			remote++
		}
		logg.Info("Publish complete",
			zap.Int("objects", uploaded),
			zap.Int("remote_objects", remote),
			zap.String("bucket", bucket))
	},
}

func init() {
	RootCmd.AddCommand(publishCmd)
}
