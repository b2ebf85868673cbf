package serializer

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"slices"
	"strings"

	corev1 "k8s.io/api/core/v1"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes"

	"github.com/vrpkit/vrpctl/pkg/k8s/client"
)

// ParseConfigMapURI splits a cm://namespace/name URI into its parts.
func ParseConfigMapURI(uri string) (namespace, name string, err error) {
	if !strings.HasPrefix(uri, ConfigMapURIScheme) {
		return "", "", fmt.Errorf("invalid ConfigMap URI %q: missing %s prefix", uri, ConfigMapURIScheme)
	}

	parts := strings.Split(strings.TrimPrefix(uri, ConfigMapURIScheme), "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("invalid ConfigMap URI %q: expected format %snamespace/name", uri, ConfigMapURIScheme)
	}
	return parts[0], parts[1], nil
}

// ConfigMapDataKey returns the data key used for documents of the given format.
func ConfigMapDataKey(format Format) string {
	if format == FormatYAML {
		return "data.yaml"
	}
	return "data.json"
}

// kubeClient returns c, or the shared client when c is nil.
func kubeClient(c kubernetes.Interface) (kubernetes.Interface, error) {
	if c != nil {
		return c, nil
	}
	cs, _, err := client.GetKubeClient()
	if err != nil {
		return nil, fmt.Errorf("failed to get kubernetes client: %w", err)
	}
	return cs, nil
}

// ConfigMapWriter stores a serialized document in a Kubernetes ConfigMap,
// creating the ConfigMap when it does not exist.
type ConfigMapWriter struct {
	Namespace string
	Name      string
	Format    Format

	// Client is the Kubernetes client. If nil, the shared client is used.
	Client kubernetes.Interface
}

// Serialize encodes data and writes it under ConfigMapDataKey(Format).
// Table output is stored as JSON.
func (w *ConfigMapWriter) Serialize(ctx context.Context, data any) error {
	format := w.Format
	if format != FormatYAML {
		format = FormatJSON
	}

	var buf bytes.Buffer
	if err := NewWriter(format, &buf).Serialize(ctx, data); err != nil {
		return err
	}

	cs, err := kubeClient(w.Client)
	if err != nil {
		return err
	}

	key := ConfigMapDataKey(format)
	cms := cs.CoreV1().ConfigMaps(w.Namespace)

	existing, err := cms.Get(ctx, w.Name, metav1.GetOptions{})
	switch {
	case apierrors.IsNotFound(err):
		cm := &corev1.ConfigMap{
			ObjectMeta: metav1.ObjectMeta{
				Name:      w.Name,
				Namespace: w.Namespace,
				Labels:    map[string]string{"app.kubernetes.io/managed-by": "vrpctl"},
			},
			Data: map[string]string{key: buf.String()},
		}
		if _, err := cms.Create(ctx, cm, metav1.CreateOptions{}); err != nil {
			return fmt.Errorf("failed to create ConfigMap %s/%s: %w", w.Namespace, w.Name, err)
		}
	case err != nil:
		return fmt.Errorf("failed to get ConfigMap %s/%s: %w", w.Namespace, w.Name, err)
	default:
		if existing.Data == nil {
			existing.Data = map[string]string{}
		}
		existing.Data[key] = buf.String()
		if _, err := cms.Update(ctx, existing, metav1.UpdateOptions{}); err != nil {
			return fmt.Errorf("failed to update ConfigMap %s/%s: %w", w.Namespace, w.Name, err)
		}
	}

	slog.Debug("wrote document to ConfigMap",
		"namespace", w.Namespace,
		"name", w.Name,
		"key", key)

	return nil
}

// Close is a no-op.
func (w *ConfigMapWriter) Close() error {
	return nil
}

// ReadConfigMapDocument fetches the ConfigMap at uri and returns a reader over
// its document. The first data key (in sorted order) with a .json, .yaml or
// .yml extension is used and determines the format.
func ReadConfigMapDocument(ctx context.Context, c kubernetes.Interface, uri string) (*Reader, error) {
	namespace, name, err := ParseConfigMapURI(uri)
	if err != nil {
		return nil, err
	}

	cs, err := kubeClient(c)
	if err != nil {
		return nil, err
	}

	cm, err := cs.CoreV1().ConfigMaps(namespace).Get(ctx, name, metav1.GetOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get ConfigMap %s/%s: %w", namespace, name, err)
	}

	keys := make([]string, 0, len(cm.Data))
	for k := range cm.Data {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	for _, k := range keys {
		switch strings.ToLower(filepath.Ext(k)) {
		case ".json", ".yaml", ".yml":
			return NewReader(FormatFromPath(k), strings.NewReader(cm.Data[k]))
		}
	}

	return nil, fmt.Errorf("ConfigMap %s/%s has no json or yaml document", namespace, name)
}
