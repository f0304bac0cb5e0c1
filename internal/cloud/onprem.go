package cloud

func onpremSpec() providerSpec {
	return providerSpec{
		displayName: "On-Premise Infrastructure",
		// nil regions: any datacenter label is accepted.
		regions: nil,
		services: map[string]string{
			"compute":       "Virtual Machines (VMware/Hyper-V/KVM/Xen)",
			"database":      "Database Servers (PostgreSQL/MySQL/Oracle/SQL Server)",
			"load_balancer": "Load Balancers (Nginx/HAProxy/F5/Citrix)",
			"storage":       "Network Storage (NFS/SMB/iSCSI/FC)",
		},
		kinds: map[Kind]kindSpec{
			KindVM: {
				required: []string{"cpu", "ram_gb", "disk_gb", "nic"},
				defaults: Config{
					"hypervisor":  "vmware",
					"host_server": "esxi-01.company.local",
					"datastore":   "datastore1",
					"region":      "datacenter-1",
				},
				enumFields: []string{"hypervisor"},
				enums: map[string][]string{
					"hypervisor": {"vmware", "hyperv", "kvm", "xen"},
				},
				minimumFields: []string{"cpu", "ram_gb", "disk_gb"},
				minimums: map[string]int{
					"cpu":     1,
					"ram_gb":  1,
					"disk_gb": 10,
				},
				idFormat: "onprem-vm-%s",
				idHexLen: 8,
				typeTag:  "onprem.virtual_machine",
			},
			KindDatabase: {
				required: []string{"engine"},
				defaults: Config{
					"version":         "13.0",
					"port":            5432,
					"host_server":     "db-server-01.company.local",
					"max_connections": 100,
					"region":          "datacenter-1",
				},
				enumFields: []string{"engine"},
				enums: map[string][]string{
					"engine": {"postgresql", "mysql", "oracle", "sqlserver"},
				},
				idFormat: "onprem-db-%s",
				idHexLen: 8,
				typeTag:  "onprem.database",
			},
			KindLoadBalancer: {
				defaults: Config{
					"type":        "nginx",
					"listen_port": 80,
					"algorithm":   "round_robin",
					"host_server": "lb-server-01.company.local",
					"region":      "datacenter-1",
				},
				enumFields: []string{"type", "algorithm"},
				enums: map[string][]string{
					"type":      {"nginx", "haproxy", "f5", "citrix"},
					"algorithm": {"round_robin", "least_conn", "ip_hash", "least_time"},
				},
				idFormat: "onprem-lb-%s",
				idHexLen: 8,
				typeTag:  "onprem.loadbalancer",
			},
			KindStorage: {
				required: []string{"storage_type"},
				defaults: Config{
					"capacity_gb":      1000,
					"host_server":      "storage-server-01.company.local",
					"protocol_version": "4.1",
					"permissions":      "rw",
					"region":           "datacenter-1",
				},
				enumFields: []string{"storage_type"},
				enums: map[string][]string{
					"storage_type": {"nfs", "smb", "iscsi", "fc"},
				},
				minimumFields: []string{"capacity_gb"},
				minimums: map[string]int{
					"capacity_gb": 10,
				},
				idFormat: "onprem-storage-%s",
				idHexLen: 8,
				typeTag:  "onprem.storage",
			},
		},
	}
}
