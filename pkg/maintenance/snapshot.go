package maintenance

import "encoding/json"

// MarshalMachines serialises a machine snapshot.
func MarshalMachines(machines []Machine) ([]byte, error) {
	return json.MarshalIndent(machines, "", "  ")
}

// UnmarshalMachines deserialises a machine snapshot.
func UnmarshalMachines(data []byte) ([]Machine, error) {
	if len(data) == 0 {
		return []Machine{}, nil
	}
	var machines []Machine
	if err := json.Unmarshal(data, &machines); err != nil {
		return nil, err
	}
	return machines, nil
}

// MarshalOrders serialises a work-order snapshot.
func MarshalOrders(orders []WorkOrder) ([]byte, error) {
	return json.MarshalIndent(orders, "", "  ")
}

// UnmarshalOrders deserialises a work-order snapshot and fills in
// defaulted enum fields so downstream filters see canonical values.
func UnmarshalOrders(data []byte) ([]WorkOrder, error) {
	if len(data) == 0 {
		return []WorkOrder{}, nil
	}
	var orders []WorkOrder
	if err := json.Unmarshal(data, &orders); err != nil {
		return nil, err
	}
	for i := range orders {
		if orders[i].Criticality == "" {
			orders[i].Criticality = CriticalityMedium
		}
		if orders[i].Status == "" {
			orders[i].Status = StatusPending
		}
	}
	return orders, nil
}
