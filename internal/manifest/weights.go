package manifest

import (
	"k8s.io/apimachinery/pkg/runtime/schema"
)

// Apply-order weights. Lower weights are applied first: Dapr components
// must exist before the sidecars of the workloads that use them start.
const (
	WeightNamespace     = 0
	WeightSecret        = 15
	WeightConfigMap     = 15
	WeightConfiguration = 20
	WeightComponent     = 30
	WeightResiliency    = 35
	WeightSubscription  = 40
	WeightService       = 50
	WeightDeployment    = 100
	WeightStatefulSet   = 100
	WeightDefault       = 1000
)

// DaprGroup is the API group of Dapr resources.
const DaprGroup = "dapr.io"

// gvkWeights maps GVK to weight.
var gvkWeights = map[schema.GroupVersionKind]int{
	{Group: "", Version: "v1", Kind: "Namespace"}: WeightNamespace,
	{Group: "", Version: "v1", Kind: "Secret"}:    WeightSecret,
	{Group: "", Version: "v1", Kind: "ConfigMap"}: WeightConfigMap,
	{Group: "", Version: "v1", Kind: "Service"}:   WeightService,

	{Group: "apps", Version: "v1", Kind: "Deployment"}:  WeightDeployment,
	{Group: "apps", Version: "v1", Kind: "StatefulSet"}: WeightStatefulSet,

	{Group: DaprGroup, Version: "v1alpha1", Kind: "Configuration"}: WeightConfiguration,
	{Group: DaprGroup, Version: "v1alpha1", Kind: "Component"}:     WeightComponent,
	{Group: DaprGroup, Version: "v1alpha1", Kind: "Resiliency"}:    WeightResiliency,
	{Group: DaprGroup, Version: "v2alpha1", Kind: "Subscription"}:  WeightSubscription,
}

// kindWeights is the fallback when the version is not listed.
var kindWeights = map[string]int{
	"Namespace":     WeightNamespace,
	"Secret":        WeightSecret,
	"ConfigMap":     WeightConfigMap,
	"Configuration": WeightConfiguration,
	"Component":     WeightComponent,
	"Resiliency":    WeightResiliency,
	"Subscription":  WeightSubscription,
	"Service":       WeightService,
	"Deployment":    WeightDeployment,
	"StatefulSet":   WeightStatefulSet,
}

// GetWeight returns the apply weight of a GVK, matching on kind alone when
// the exact GVK is unknown.
func GetWeight(gvk schema.GroupVersionKind) int {
	if w, ok := gvkWeights[gvk]; ok {
		return w
	}
	if w, ok := kindWeights[gvk.Kind]; ok {
		return w
	}
	return WeightDefault
}
