package verlet_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestVerletSuite(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Verlet Suite")
}
