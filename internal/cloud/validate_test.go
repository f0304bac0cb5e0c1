package cloud

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// validConfigs holds, for every (provider, kind), a config that passes
// validation with every required field present and nothing else.
var validConfigs = map[Provider]map[Kind]Config{
	AWS: {
		KindVM:           {"instance_type": "t3.medium", "ami": "ami-0abcdef1234567890", "vpc_id": "vpc-12345", "region": "us-east-1"},
		KindDatabase:     {"engine": "mysql", "instance_class": "db.t3.micro", "allocated_storage": 20, "region": "us-east-1"},
		KindLoadBalancer: {"vpc_id": "vpc-12345", "region": "us-east-1"},
		KindStorage:      {"region": "us-east-1"},
	},
	Azure: {
		KindVM:           {"vm_size": "Standard_B1s", "image": "UbuntuLTS", "resource_group": "my-rg", "region": "eastus"},
		KindDatabase:     {"tier": "Basic", "server_name": "mydbserver", "resource_group": "my-rg", "region": "eastus"},
		KindLoadBalancer: {"resource_group": "my-rg", "region": "eastus"},
		KindStorage:      {"region": "eastus"},
	},
	GCP: {
		KindVM:           {"machine_type": "e2-micro"},
		KindDatabase:     {"engine": "postgres"},
		KindLoadBalancer: {},
		KindStorage:      {},
	},
	Oracle: {
		KindVM: {
			"compute_shape": "VM.Standard2.1", "compartment_id": "ocid1.compartment.oc1..demo",
			"availability_domain": "AD-1", "subnet_id": "ocid1.subnet.oc1..demo", "image_id": "ocid1.image.oc1..demo",
		},
		KindDatabase:     {"workload_type": "OLTP", "compartment_id": "ocid1.compartment.oc1..demo"},
		KindLoadBalancer: {"compartment_id": "ocid1.compartment.oc1..demo"},
		KindStorage:      {"namespace": "demo-ns", "compartment_id": "ocid1.compartment.oc1..demo"},
	},
	OnPrem: {
		KindVM:           {"cpu": 2, "ram_gb": 4, "disk_gb": 50, "nic": "eth0"},
		KindDatabase:     {"engine": "postgresql"},
		KindLoadBalancer: {},
		KindStorage:      {"storage_type": "nfs"},
	},
}

func TestValidate_RequiredFieldMatrix(t *testing.T) {
	for provider, kinds := range validConfigs {
		for kind, valid := range kinds {
			t.Run(fmt.Sprintf("%s_%s", provider, kind), func(t *testing.T) {
				require.NoError(t, Validate(provider, kind, valid.Clone()))

				// Omitting any single required field must name exactly
				// that field.
				for _, field := range catalog[provider].kinds[kind].required {
					cfg := valid.Clone()
					delete(cfg, field)

					err := Validate(provider, kind, cfg)
					var missing *MissingFieldError
					require.ErrorAs(t, err, &missing, "field %s", field)
					assert.Equal(t, provider, missing.Provider)
					assert.Equal(t, kind, missing.Kind)
					assert.Equal(t, []string{field}, missing.Fields)
				}
			})
		}
	}
}

func TestValidate_CollectsAllMissingFields(t *testing.T) {
	err := Validate(AWS, KindVM, Config{"region": "us-east-1"})

	var missing *MissingFieldError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, []string{"instance_type", "ami", "vpc_id"}, missing.Fields)
}

func TestValidate_NilValueCountsAsMissing(t *testing.T) {
	cfg := validConfigs[AWS][KindVM].Clone()
	cfg["ami"] = nil

	var missing *MissingFieldError
	require.ErrorAs(t, Validate(AWS, KindVM, cfg), &missing)
	assert.Equal(t, []string{"ami"}, missing.Fields)
}

func TestValidate_OnPremNumericMinimums(t *testing.T) {
	// Boundary values are valid.
	require.NoError(t, Validate(OnPrem, KindVM, Config{
		"cpu": 1, "ram_gb": 1, "disk_gb": 10, "nic": "eth0",
	}))

	cases := []struct {
		field string
		cfg   Config
	}{
		{"cpu", Config{"cpu": 0, "ram_gb": 4, "disk_gb": 50, "nic": "eth0"}},
		{"ram_gb", Config{"cpu": 2, "ram_gb": 0, "disk_gb": 50, "nic": "eth0"}},
		{"disk_gb", Config{"cpu": 2, "ram_gb": 4, "disk_gb": 9, "nic": "eth0"}},
	}
	for _, tc := range cases {
		err := Validate(OnPrem, KindVM, tc.cfg)
		var invalid *InvalidValueError
		require.ErrorAs(t, err, &invalid, "field %s", tc.field)
		assert.Equal(t, OnPrem, invalid.Provider)
		assert.Equal(t, KindVM, invalid.Kind)
		assert.Equal(t, tc.field, invalid.Field)
	}
}

func TestValidate_MinimumsAcceptJSONNumbers(t *testing.T) {
	// Decoded JSON bodies deliver numbers as float64.
	require.NoError(t, Validate(OnPrem, KindVM, Config{
		"cpu": float64(2), "ram_gb": float64(4), "disk_gb": float64(50), "nic": "eth0",
	}))

	var invalid *InvalidValueError
	err := Validate(OnPrem, KindVM, Config{
		"cpu": float64(0), "ram_gb": float64(4), "disk_gb": float64(50), "nic": "eth0",
	})
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "cpu", invalid.Field)
}

func TestValidate_RegionMembership(t *testing.T) {
	cfg := validConfigs[AWS][KindStorage].Clone()
	cfg["region"] = "mars-north-1"

	var invalid *InvalidValueError
	require.ErrorAs(t, Validate(AWS, KindStorage, cfg), &invalid)
	assert.Equal(t, "region", invalid.Field)

	// onprem accepts any datacenter label.
	require.NoError(t, Validate(OnPrem, KindVM, Config{
		"cpu": 2, "ram_gb": 4, "disk_gb": 50, "nic": "eth0", "region": "basement-rack-3",
	}))
}

func TestValidate_EnumeratedValues(t *testing.T) {
	cases := []struct {
		provider Provider
		kind     Kind
		field    string
		cfg      Config
	}{
		{GCP, KindVM, "machine_type", Config{"machine_type": "warp-drive-9"}},
		{GCP, KindDatabase, "engine", Config{"engine": "mongodb"}},
		{Oracle, KindLoadBalancer, "shape", Config{"compartment_id": "ocid1.compartment.oc1..demo", "shape": "5Mbps"}},
		{OnPrem, KindVM, "hypervisor", Config{"cpu": 2, "ram_gb": 4, "disk_gb": 50, "nic": "eth0", "hypervisor": "bochs"}},
		{OnPrem, KindLoadBalancer, "algorithm", Config{"algorithm": "coin_flip"}},
	}
	for _, tc := range cases {
		err := Validate(tc.provider, tc.kind, tc.cfg)
		var invalid *InvalidValueError
		require.ErrorAs(t, err, &invalid, "%s %s %s", tc.provider, tc.kind, tc.field)
		assert.Equal(t, tc.field, invalid.Field)
	}
}

func TestValidate_UnknownKind(t *testing.T) {
	err := Validate(AWS, Kind("volume"), Config{})

	var invalid *InvalidValueError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, AWS, invalid.Provider)
	assert.Equal(t, Kind("volume"), invalid.Kind)
	assert.Equal(t, "kind", invalid.Field)
}

func TestValidate_UnknownProvider(t *testing.T) {
	err := Validate(Provider("ibm"), KindVM, Config{})

	var unsupported *UnsupportedProviderError
	require.True(t, errors.As(err, &unsupported))
	assert.Equal(t, "ibm", unsupported.Provider)
}
