package config

import (
	"k8s.io/apimachinery/pkg/util/validation/field"

	"github.com/fcsr-dev/fcsr/api/v1alpha1"
)

// Validate reports every problem in cfg at once. The returned error, if any,
// is a k8s.io/apimachinery/pkg/util/errors.Aggregate of *field.Error.
func Validate(cfg *v1alpha1.Config) error {
	var errs field.ErrorList

	switch cfg.Access {
	case v1alpha1.AccessPublic, v1alpha1.AccessRestricted:
	default:
		errs = append(errs, field.NotSupported(field.NewPath("access"), cfg.Access,
			[]string{string(v1alpha1.AccessPublic), string(v1alpha1.AccessRestricted)}))
	}

	switch cfg.UpdateInternalDependencies {
	case v1alpha1.UpdateInternalDependenciesPatch, v1alpha1.UpdateInternalDependenciesMinor:
	default:
		errs = append(errs, field.NotSupported(field.NewPath("updateInternalDependencies"), cfg.UpdateInternalDependencies,
			[]string{string(v1alpha1.UpdateInternalDependenciesPatch), string(v1alpha1.UpdateInternalDependenciesMinor)}))
	}

	if cfg.BaseBranch == "" {
		errs = append(errs, field.Required(field.NewPath("baseBranch"), ""))
	}

	errs = append(errs, validateGroups(field.NewPath("fixed"), cfg.Fixed)...)
	errs = append(errs, validateGroups(field.NewPath("linked"), cfg.Linked)...)

	for i, name := range cfg.Ignore {
		if name == "" {
			errs = append(errs, field.Required(field.NewPath("ignore").Index(i), "package name must not be empty"))
		}
	}

	return errs.ToAggregate()
}

func validateGroups(path *field.Path, groups []v1alpha1.PackageGroup) field.ErrorList {
	var errs field.ErrorList
	for i, group := range groups {
		for j, pattern := range group {
			if pattern == "" {
				errs = append(errs, field.Required(path.Index(i).Index(j), "pattern must not be empty"))
			}
		}
	}
	return errs
}
