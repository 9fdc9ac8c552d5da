package emit

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	appsv1 "k8s.io/api/apps/v1"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/util/intstr"
	"sigs.k8s.io/yaml"

	"github.com/deploykit/deploykit/api/v1alpha1"
	"github.com/deploykit/deploykit/internal/util/naming"
	"github.com/deploykit/deploykit/internal/util/ptr"
	"github.com/deploykit/deploykit/pkg/builder"
	"github.com/deploykit/deploykit/pkg/descriptor"
)

// ManifestEmitter renders a DeploymentSpec as a multi-document YAML stream
// of Kubernetes manifests. The external provisioning engine applies them;
// the emitter itself never touches a cluster.
type ManifestEmitter struct {
	out       io.Writer
	namespace string
	observer  Observer
}

// NewManifestEmitter creates an emitter writing to out. Resources are
// namespaced under namespace; a nil observer disables events.
func NewManifestEmitter(out io.Writer, namespace string, observer Observer) *ManifestEmitter {
	if observer == nil {
		observer = NoopObserver{}
	}
	return &ManifestEmitter{out: out, namespace: namespace, observer: observer}
}

// Emit implements Emitter.
func (e *ManifestEmitter) Emit(ctx context.Context, spec *descriptor.DeploymentSpec) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	descriptors := spec.All()
	for i, d := range descriptors {
		obj, err := e.render(d)
		if err != nil {
			e.observer.Event(Event{Type: EventEmitFailed, Resource: d.Name(), Kind: string(d.Kind()), Message: err.Error()})
			return err
		}

		data, err := yaml.Marshal(obj)
		if err != nil {
			return fmt.Errorf("failed to marshal %s: %w", d.Name(), err)
		}

		if i > 0 {
			if _, err := io.WriteString(e.out, "---\n"); err != nil {
				return fmt.Errorf("failed to write manifest stream: %w", err)
			}
		}
		if _, err := e.out.Write(data); err != nil {
			return fmt.Errorf("failed to write manifest stream: %w", err)
		}

		e.observer.Event(Event{
			Type:     EventResourceRendered,
			Resource: d.Name(),
			Kind:     string(d.Kind()),
			Message:  "rendered manifest",
		})
	}

	e.observer.Event(Event{
		Type:    EventEmitCompleted,
		Message: fmt.Sprintf("emitted %d resources", len(descriptors)),
	})
	return nil
}

// render maps one descriptor to its Kubernetes object.
func (e *ManifestEmitter) render(d descriptor.ResourceDescriptor) (any, error) {
	switch d.Kind() {
	case descriptor.KindWorkload:
		return e.renderDeployment(d)
	case descriptor.KindNetworkService:
		return e.renderService(d)
	case descriptor.KindManagedDatabase:
		return e.renderDatabase(d)
	case descriptor.KindCredential:
		return e.renderSecret(d)
	default:
		return nil, fmt.Errorf("no renderer for descriptor kind %q", d.Kind())
	}
}

func (e *ManifestEmitter) renderDeployment(d descriptor.ResourceDescriptor) (*appsv1.Deployment, error) {
	port, err := intField(d, builder.FieldPort)
	if err != nil {
		return nil, err
	}
	replicas, err := intField(d, builder.FieldReplicas)
	if err != nil {
		return nil, err
	}
	image, ok := d.Field(builder.FieldImage)
	if !ok {
		return nil, fmt.Errorf("workload %s has no image field", d.Name())
	}

	env, err := containerEnv(d)
	if err != nil {
		return nil, err
	}

	labels := naming.Labels(d.Name())
	return &appsv1.Deployment{
		TypeMeta:   metav1.TypeMeta{APIVersion: "apps/v1", Kind: "Deployment"},
		ObjectMeta: e.objectMeta(d.Name(), labels),
		Spec: appsv1.DeploymentSpec{
			Replicas: ptr.Int32(int32(replicas)),
			Selector: &metav1.LabelSelector{MatchLabels: map[string]string{"app": d.Name()}},
			Template: corev1.PodTemplateSpec{
				ObjectMeta: metav1.ObjectMeta{Labels: labels},
				Spec: corev1.PodSpec{
					Containers: []corev1.Container{{
						Name:  d.Name(),
						Image: image,
						Ports: []corev1.ContainerPort{{ContainerPort: int32(port)}},
						Env:   env,
					}},
				},
			},
		},
	}, nil
}

func (e *ManifestEmitter) renderService(d descriptor.ResourceDescriptor) (*corev1.Service, error) {
	port, err := intField(d, builder.FieldPort)
	if err != nil {
		return nil, err
	}
	app, ok := d.Field("app")
	if !ok {
		app = d.Name()
	}

	return &corev1.Service{
		TypeMeta:   metav1.TypeMeta{APIVersion: "v1", Kind: "Service"},
		ObjectMeta: e.objectMeta(d.Name(), naming.Labels(app)),
		Spec: corev1.ServiceSpec{
			Selector: map[string]string{"app": app},
			Ports: []corev1.ServicePort{{
				Port:       int32(port),
				TargetPort: intstr.FromInt32(int32(port)),
			}},
		},
	}, nil
}

func (e *ManifestEmitter) renderDatabase(d descriptor.ResourceDescriptor) (*v1alpha1.ManagedDatabase, error) {
	fields := d.Fields()
	return &v1alpha1.ManagedDatabase{
		TypeMeta:   metav1.TypeMeta{APIVersion: v1alpha1.GroupVersion.String(), Kind: "ManagedDatabase"},
		ObjectMeta: e.objectMeta(d.Name(), naming.Labels(fields["database"])),
		Spec: v1alpha1.ManagedDatabaseSpec{
			Engine:              fields["engine"],
			Size:                fields["size"],
			DatabaseName:        fields["database"],
			CredentialSecretRef: fields["credential"],
		},
	}, nil
}

func (e *ManifestEmitter) renderSecret(d descriptor.ResourceDescriptor) (*corev1.Secret, error) {
	return &corev1.Secret{
		TypeMeta:   metav1.TypeMeta{APIVersion: "v1", Kind: "Secret"},
		ObjectMeta: e.objectMeta(d.Name(), nil),
		Type:       corev1.SecretTypeOpaque,
		StringData: d.Fields(),
	}, nil
}

func (e *ManifestEmitter) objectMeta(name string, labels map[string]string) metav1.ObjectMeta {
	return metav1.ObjectMeta{
		Name:      name,
		Namespace: e.namespace,
		Labels:    labels,
	}
}

// containerEnv builds the container environment from workload fields. Plain
// entries use the env. prefix; secret-backed entries use secretRef. with a
// "{secretName}/{key}" value and render as secretKeyRef so the plaintext
// never appears in the Deployment. Secret-backed entries come first so
// plain entries can reference them with $(NAME) substitution; both groups
// stay sorted by key for deterministic output.
func containerEnv(d descriptor.ResourceDescriptor) ([]corev1.EnvVar, error) {
	var fromSecret, plain []corev1.EnvVar
	for _, key := range d.FieldKeys() {
		value, _ := d.Field(key)
		switch {
		case strings.HasPrefix(key, builder.EnvFieldPrefix):
			plain = append(plain, corev1.EnvVar{
				Name:  strings.TrimPrefix(key, builder.EnvFieldPrefix),
				Value: value,
			})
		case strings.HasPrefix(key, builder.SecretFieldPrefix):
			secretName, secretKey, ok := strings.Cut(value, "/")
			if !ok {
				return nil, fmt.Errorf("workload field %s has malformed secret reference %q", key, value)
			}
			fromSecret = append(fromSecret, corev1.EnvVar{
				Name: strings.TrimPrefix(key, builder.SecretFieldPrefix),
				ValueFrom: &corev1.EnvVarSource{
					SecretKeyRef: &corev1.SecretKeySelector{
						LocalObjectReference: corev1.LocalObjectReference{Name: secretName},
						Key:                  secretKey,
					},
				},
			})
		}
	}
	return append(fromSecret, plain...), nil
}

func intField(d descriptor.ResourceDescriptor, key string) (int, error) {
	raw, ok := d.Field(key)
	if !ok {
		return 0, fmt.Errorf("descriptor %s has no %s field", d.Name(), key)
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("descriptor %s has invalid %s field %q: %w", d.Name(), key, raw, err)
	}
	return v, nil
}
